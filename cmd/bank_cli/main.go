package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/bank_ledger_app/internal/adapters/storage/jsonfile"
	"github.com/SscSPs/bank_ledger_app/internal/adapters/storage/memory"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/handlers"
	"github.com/SscSPs/bank_ledger_app/pkg/config"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with the menu on stdout
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	repo := newSnapshotRepository(cfg, logger)
	bankService := services.NewBankService(cfg.BankName, repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bankService.Load(ctx); err != nil {
		logger.Error("Failed to load bank", slog.String("error", err.Error()))
		os.Exit(1)
	}

	console := handlers.NewConsole(
		services.NewServiceContainer(bankService),
		os.Stdin,
		os.Stdout,
		logger,
		handlers.WithAutoSave(cfg.AutoSave),
	)

	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info("Shutdown signal received, saving bank")
		// The parent context is already cancelled
		err = bankService.Save(context.Background())
	}

	if err != nil {
		logger.Error("Bank was not saved", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Bank ledger stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatText {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func newSnapshotRepository(cfg *config.Config, logger *slog.Logger) portsrepo.SnapshotRepositoryFacade {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return memory.NewSnapshotRepository()
	}
	logger.Info("Using JSON snapshot storage", slog.String("data_file", cfg.DataFile))
	return jsonfile.NewSnapshotRepository(cfg.DataFile)
}
