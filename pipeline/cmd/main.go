// Command compile_templates builds HTML files from template modules. It
// clears the output directory, then loads each input's default export,
// compiles it with pretty-printing and writes <name>.html.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aaimio/logicful-templates-example-ts/pipeline"
)

const (
	defaultOutDir = "dist"
	defaultInput  = "templates/index.yaml"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)

	return nil
}

// newLogger builds the text logger diagnostics are written with.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(
		w, &slog.HandlerOptions{Level: level},
	))
}

func run(ctx context.Context, args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("compile_templates", flag.ContinueOnError)
	fs.SetOutput(logOut)

	var (
		inputs         arrayFlags
		stampInfoFiles arrayFlags
		vars           arrayFlags
		configPath     string
		outDir         string
		startTag       string
		endTag         string
		verbose        bool
	)

	fs.StringVar(
		&configPath, "config", "",
		"YAML configuration file (optional)",
	)

	fs.StringVar(
		&outDir, "out_dir", defaultOutDir,
		"Output directory, deleted and recreated on every run",
	)

	fs.Var(
		&inputs,
		"input",
		"Template module path (repeatable, default "+defaultInput+")",
	)

	fs.Var(
		&stampInfoFiles,
		"stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	fs.Var(
		&vars,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	fs.StringVar(
		&startTag, "start_tag", "{{",
		"Start tag for variable placeholders",
	)

	fs.StringVar(
		&endTag, "end_tag", "}}",
		"End tag for variable placeholders",
	)

	fs.BoolVar(&verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	logger := newLogger(logOut, verbose)
	slog.SetDefault(logger)

	var cfg pipeline.Config

	if configPath != "" {
		var err error

		cfg, err = pipeline.LoadConfigFile(configPath)
		if err != nil {
			return err
		}

		logger.Debug("loaded config", "path", configPath)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	// Explicit flags win over the config file; defaults
	// only fill what the file left empty.
	if explicit["out_dir"] || cfg.OutDir == "" {
		cfg.OutDir = outDir
	}

	if len(inputs) > 0 {
		cfg.Inputs = inputs
	} else if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{defaultInput}
	}

	if explicit["start_tag"] || cfg.StartTag == "" {
		cfg.StartTag = startTag
	}

	if explicit["end_tag"] || cfg.EndTag == "" {
		cfg.EndTag = endTag
	}

	cfg.StampInfoFiles = append(cfg.StampInfoFiles, stampInfoFiles...)
	cfg.Variables = append(cfg.Variables, vars...)
	cfg.Logger = logger

	return pipeline.Run(ctx, cfg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Diagnostics go to stderr; stdout stays free for callers.
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		stop()
		slog.Error(err.Error())
		os.Exit(1)
	}
}
