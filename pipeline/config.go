package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/aaimio/logicful-templates-example-ts/loader"
)

// Config holds all settings for a template build run.
type Config struct {
	// OutDir is the output directory. It is deleted and
	// recreated on every run.
	OutDir string

	// Inputs lists template module paths, processed in
	// order.
	Inputs []string

	// StampInfoFiles are KEY VALUE files whose entries
	// become template variables.
	StampInfoFiles []string

	// Variables are NAME=VALUE pairs that override stamps.
	Variables []string

	// StartTag and EndTag delimit variable placeholders in
	// data modules ("{{" and "}}" when empty).
	StartTag string
	EndTag   string

	// Registry provides renderers for modules that are not
	// data files. May be nil.
	Registry *loader.Registry

	// Logger receives progress and warning lines. Defaults
	// to slog.Default().
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

// fileConfig mirrors the YAML configuration file.
type fileConfig struct {
	OutDir         string   `yaml:"outDir"`
	Inputs         []string `yaml:"inputs"`
	StampInfoFiles []string `yaml:"stampInfoFiles"`
	Variables      []string `yaml:"variables"`
	StartTag       string   `yaml:"startTag"`
	EndTag         string   `yaml:"endTag"`
}

// LoadConfigFile reads a YAML configuration file. Relative
// paths in it resolve against the file's directory.
func LoadConfigFile(path string) (Config, error) {
	const errCtx = "loading config file"

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return Config{}, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, path, err,
		)
	}

	base := filepath.Dir(path)

	cfg := Config{
		Inputs:         resolveAll(base, fc.Inputs),
		StampInfoFiles: resolveAll(base, fc.StampInfoFiles),
		Variables:      fc.Variables,
		StartTag:       fc.StartTag,
		EndTag:         fc.EndTag,
	}

	if fc.OutDir != "" {
		cfg.OutDir = resolve(base, fc.OutDir)
	}

	return cfg, nil
}

func resolveAll(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	out := make([]string, 0, len(paths))
	for _, pa := range paths {
		out = append(out, resolve(base, pa))
	}

	return out
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(base, path)
}
