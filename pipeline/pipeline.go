package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aaimio/logicful-templates-example-ts/fsprobe"
	"github.com/aaimio/logicful-templates-example-ts/loader"
	"github.com/aaimio/logicful-templates-example-ts/outdir"
	"github.com/aaimio/logicful-templates-example-ts/variables"
)

// Result records what a run did with each input.
type Result struct {
	// Written holds absolute paths of the files written,
	// in input order.
	Written []string

	// Skipped holds absolute input paths that were missing
	// or had no default export.
	Skipped []string
}

// Run executes a full build. See RunWithResult.
func Run(ctx context.Context, cfg Config) error {
	_, err := RunWithResult(ctx, cfg)

	return err
}

// RunWithResult cleans the output directory and compiles
// every input in declared order. Missing inputs and modules
// without a default export are skipped with a warning; any
// other failure aborts the run and is returned together with
// the partial result. The context is checked before each
// input.
func RunWithResult(ctx context.Context, cfg Config) (Result, error) {
	const errCtx = "compiling templates"

	var res Result

	log := cfg.logger()

	if cfg.OutDir == "" {
		return res, fmt.Errorf("%s: output directory not set", errCtx)
	}

	outDir, err := filepath.Abs(cfg.OutDir)
	if err != nil {
		return res, fmt.Errorf("%s: %w", errCtx, err)
	}

	vars, err := variables.Load(cfg.StampInfoFiles, cfg.Variables)
	if err != nil {
		return res, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := outdir.Prepare(outDir); err != nil {
		return res, fmt.Errorf("%s: %w", errCtx, err)
	}

	log.Info("Cleaned", "path", outDir)

	ld := loader.Loader{
		Vars:     vars,
		StartTag: cfg.StartTag,
		EndTag:   cfg.EndTag,
		Registry: cfg.Registry,
	}

	for _, input := range cfg.Inputs {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		inputPath, err := filepath.Abs(input)
		if err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		exists, err := fsprobe.Exists(inputPath)
		if err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		if !exists {
			log.Warn("Could not find file", "path", inputPath)
			res.Skipped = append(res.Skipped, inputPath)

			continue
		}

		render, err := ld.Load(inputPath)
		if errors.Is(err, loader.ErrNoDefaultExport) {
			log.Warn("Could not find default export", "path", inputPath)
			res.Skipped = append(res.Skipped, inputPath)

			continue
		}

		if err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		outPath, err := renderAndWrite(outDir, inputPath, render)
		if err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		digest, err := fsprobe.Digest(outPath)
		if err != nil {
			return res, fmt.Errorf("%s: %w", errCtx, err)
		}

		log.Info("Wrote", "path", outPath, "sha256", digest)
		res.Written = append(res.Written, outPath)
	}

	log.Info(
		"Finished compiling templates",
		"written", len(res.Written),
		"skipped", len(res.Skipped),
	)

	return res, nil
}
