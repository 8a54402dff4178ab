package outdir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaimio/logicful-templates-example-ts/outdir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_creates_absent_directory(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "dist")

	require.NoError(t, outdir.Prepare(dist))

	info, err := os.Stat(dist)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := os.ReadDir(dist)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrepare_creates_missing_parents(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "build", "out", "dist")

	require.NoError(t, outdir.Prepare(dist))

	info, err := os.Stat(dist)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPrepare_removes_stale_files(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "nested"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dist, "old.html"), []byte("stale"), 0o600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dist, "nested", "deep.html"), []byte("stale"), 0o600,
	))

	require.NoError(t, outdir.Prepare(dist))

	entries, err := os.ReadDir(dist)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrepare_replaces_file_with_directory(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.WriteFile(dist, []byte("not a dir"), 0o600))

	require.NoError(t, outdir.Prepare(dist))

	info, err := os.Stat(dist)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPrepare_idempotent(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "dist")

	require.NoError(t, outdir.Prepare(dist))
	require.NoError(t, outdir.Prepare(dist))

	entries, err := os.ReadDir(dist)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrepare_empty_path(t *testing.T) {
	t.Parallel()

	err := outdir.Prepare("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "preparing output directory")
}
