package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/scenario"
	"github.com/dshills/blockedit/internal/script"
	"github.com/dshills/blockedit/internal/watcher"
)

func runScenarios(ctx context.Context, cfg config.Config, logger *app.Logger, out io.Writer, files []string) error {
	runner := scenario.NewRunner(cfg, scenario.WithLogger(logger))

	var results []*scenario.Result
	for _, path := range files {
		scenarios, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		res, err := runner.RunAll(ctx, scenarios)
		results = append(results, res...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	sum, err := scenario.Report(out, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", sum.Passed, sum.Failed)
	if sum.Failed > 0 {
		return errFailed
	}
	return nil
}

func runScripts(ctx context.Context, cfg config.Config, logger *app.Logger, out io.Writer, files []string) error {
	var failed int
	for _, path := range files {
		failures, err := runScript(ctx, cfg, logger, path)
		if err != nil {
			return err
		}
		if len(failures) == 0 {
			fmt.Fprintf(out, "PASS %s\n", path)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL %s\n", path)
		for _, f := range failures {
			fmt.Fprintf(out, "    %s\n", f)
		}
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

func runScript(ctx context.Context, cfg config.Config, logger *app.Logger, path string) ([]string, error) {
	s := script.NewSession(cfg, script.WithLogger(logger))
	defer s.Close()

	if err := s.RunFile(ctx, path); err != nil {
		return nil, err
	}
	return s.Failures(), nil
}

// runPath runs one file by extension.
func runPath(ctx context.Context, cfg config.Config, logger *app.Logger, out io.Writer, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return runScripts(ctx, cfg, logger, out, []string{path})
	}
	return runScenarios(ctx, cfg, logger, out, []string{path})
}

// watch runs every file once, then again whenever it changes. Failures are
// reported and do not stop watching.
func watch(ctx context.Context, cfg config.Config, logger *app.Logger, out io.Writer, paths []string) error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		report(logger, p, runPath(ctx, cfg, logger, out, p))
	}
	logger.Info("watching", "paths", len(paths))

	return w.Run(ctx, func(ev watcher.Event) {
		if ev.Op.Has(watcher.OpRemove) || ev.Op.Has(watcher.OpRename) {
			logger.Debug("file gone", "path", ev.Path, "op", ev.Op)
			return
		}
		logger.Info("changed", "path", ev.Path, "op", ev.Op)
		report(logger, ev.Path, runPath(ctx, cfg, logger, out, ev.Path))
	}, func(err error) {
		logger.Warn("watch error", "err", err)
	})
}

func report(logger *app.Logger, path string, err error) {
	if err != nil && !errors.Is(err, errFailed) {
		logger.Error("run failed", "path", path, "err", err)
	}
}
