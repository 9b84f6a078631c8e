// Package main is the entry point for the blockedit command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errFailed reports that a scenario or script expectation failed.
var errFailed = errors.New("expectations failed")

type options struct {
	configPath string
	logLevel   string
	platform   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blockedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	var showVersion bool
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.platform, "platform", "", "Keystroke platform (auto, mac, other)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "blockedit - widget editing scenarios\n\n")
		fmt.Fprintf(stderr, "Usage: blockedit [options] <command> <files...>\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  run     Run YAML scenario files\n")
		fmt.Fprintf(stderr, "  script  Run Lua scripts\n")
		fmt.Fprintf(stderr, "  watch   Re-run scenarios and scripts when they change\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintf(stdout, "blockedit %s\nCommit: %s\nBuilt: %s\n", version, commit, date)
		return 0
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, files := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "run":
		err = runScenarios(ctx, cfg, logger, stdout, files)
	case "script":
		err = runScripts(ctx, cfg, logger, stdout, files)
	case "watch":
		err = watch(ctx, cfg, logger, stdout, files)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.NewLoader().Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.platform != "" {
		cfg.Keystrokes.Platform = opts.platform
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *app.Logger {
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.Log.Level)
	lc.Format = app.LogFormat(cfg.Log.Format)
	lc.Output = w
	return app.NewLogger(lc)
}
