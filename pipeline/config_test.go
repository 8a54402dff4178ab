package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaimio/logicful-templates-example-ts/pipeline"
)

func TestLoadConfigFile_resolves_relative_paths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	pa := writeTemp(t, root, "build/templates.yaml", `outDir: ../dist
inputs:
  - ../templates/index.yaml
  - /abs/other.json
stampInfoFiles:
  - status.txt
variables:
  - title=Home
startTag: "[["
endTag: "]]"
`)

	cfg, err := pipeline.LoadConfigFile(pa)
	require.NoError(t, err)

	base := filepath.Join(root, "build")
	assert.Equal(t, filepath.Join(root, "dist"), cfg.OutDir)
	assert.Equal(t, []string{
		filepath.Join(root, "templates", "index.yaml"),
		"/abs/other.json",
	}, cfg.Inputs)
	assert.Equal(t, []string{filepath.Join(base, "status.txt")}, cfg.StampInfoFiles)
	assert.Equal(t, []string{"title=Home"}, cfg.Variables)
	assert.Equal(t, "[[", cfg.StartTag)
	assert.Equal(t, "]]", cfg.EndTag)
}

func TestLoadConfigFile_empty_keeps_zero_values(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, t.TempDir(), "empty.yaml", "inputs: []\n")

	cfg, err := pipeline.LoadConfigFile(pa)
	require.NoError(t, err)

	assert.Empty(t, cfg.OutDir)
	assert.Empty(t, cfg.Inputs)
}

func TestLoadConfigFile_missing(t *testing.T) {
	t.Parallel()

	_, err := pipeline.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestLoadConfigFile_malformed(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, t.TempDir(), "bad.yaml", "inputs: [unterminated\n")

	_, err := pipeline.LoadConfigFile(pa)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
