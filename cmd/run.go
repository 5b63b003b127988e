package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fchimpan/termclock/internal/clock"
	"github.com/fchimpan/termclock/internal/logging"
	"github.com/fchimpan/termclock/internal/term"
	"github.com/fchimpan/termclock/internal/tui"
)

func run(ctx context.Context, deps Deps, opts options) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.RunTerm == nil {
		return fmt.Errorf("deps.RunTerm is nil")
	}
	if deps.Now == nil {
		return fmt.Errorf("deps.Now is nil")
	}

	logger, closeLog, err := openLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	sampler := &clock.Sampler{Now: deps.Now}
	logger.Debug("starting", "backend", opts.backend, "mode", opts.mode.String(), "interval", opts.interval)

	switch opts.backend {
	case backendTcell:
		err = deps.RunTerm(ctx, term.Options{
			Mode:     opts.mode,
			Interval: opts.interval,
			Sampler:  sampler,
			Logger:   logger,
		})
	default:
		err = deps.RunTUI(tui.Options{
			Mode:     opts.mode,
			Interval: opts.interval,
			Sampler:  sampler,
			Logger:   logger,
		})
	}
	if err != nil {
		logger.Error("clock terminated", "err", err)
		return fmt.Errorf("clock terminated: %w", err)
	}
	return nil
}

func openLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := logging.New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}
