// reviewtui is a terminal version of the review widget. It runs review
// store in process, on memory storage by default or on PostgreSQL
// with --postgres.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	storage "appreview/internal/app/storage"
	"appreview/internal/config"
	"appreview/internal/lib/clock"
	"appreview/internal/seed"
	reviewSrv "appreview/internal/service/review"
	"appreview/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var delay time.Duration
	var noSeed bool
	var seedPath, postgresURL, logOutput string

	flagSet := pflag.NewFlagSet("reviewtui", pflag.ContinueOnError)
	flagSet.DurationVar(&delay, "delay", 75*time.Second, "auto-approval delay for new reviews")
	flagSet.BoolVar(&noSeed, "no-seed", false, "start without sample reviews")
	flagSet.StringVar(&seedPath, "seed", "", "YAML file with sample reviews (default: built-in samples)")
	flagSet.StringVar(&postgresURL, "postgres", "", "PostgreSQL connection URL (default: memory storage)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if delay <= 0 {
		return fmt.Errorf("--delay must be positive, got %s", delay)
	}

	log, closeLog, err := setupLogger(logOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kind := config.StorageMemory
	if postgresURL != "" {
		kind = config.StoragePostgres
	}
	storage, err := storage.New(ctx, kind, postgresURL)
	if err != nil {
		return err
	}
	defer storage.Stop()

	review := reviewSrv.New(log, clock.Real(), delay, storage.Reviews)
	defer review.Close()

	if !noSeed {
		samples, err := seed.Load(seedPath)
		if err != nil {
			return err
		}
		if err := review.Seed(ctx, samples); err != nil {
			return err
		}
	}
	if err := review.Restore(ctx); err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(ctx, review), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func setupLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log output: %w", err)
	}

	log := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { file.Close() }, nil
}
