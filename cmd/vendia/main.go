package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vendia-pos/vendia/internal/app"
	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/sales"
	"github.com/vendia-pos/vendia/internal/store"
	"github.com/vendia-pos/vendia/internal/ui"
)

func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Logs go to a file (or stderr) so the interactive screen stays clean.
	logSink := os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Default().Error("open log file", slog.Any("error", err))
			os.Exit(1)
		}
		defer f.Close()
		logSink = f
	}
	logger := app.NewLogger(cfg, logSink)

	st := store.New(cfg.DataDir, logger)

	catalogService, err := catalog.NewService(catalog.NewFileRepository(st), logger)
	if err != nil {
		logger.Error("load catalog", slog.Any("error", err))
		os.Exit(1)
	}
	salesService, err := sales.NewService(sales.NewFileRepository(st), catalogService, logger)
	if err != nil {
		logger.Error("load sales ledger", slog.Any("error", err))
		os.Exit(1)
	}
	catalogService.SetUsage(salesService)

	terminal := ui.New(ui.Params{
		Catalog:  catalogService,
		Sales:    salesService,
		Style:    ui.NewStyle(!cfg.NoColor),
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   logger,
		TopLimit: cfg.TopLimit,
	})

	done := make(chan error, 1)
	go func() { done <- terminal.Run() }()

	select {
	case <-ctx.Done():
		// Every mutation is persisted as it happens, so an interrupt
		// loses nothing.
		os.Stdout.WriteString("\nInterrupted. All changes are already saved.\n")
	case err := <-done:
		if err != nil {
			logger.Error("terminal session", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
