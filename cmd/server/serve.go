package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/jsamuelsen11/projectledger/internal/adapters/http"
	"github.com/jsamuelsen11/projectledger/internal/adapters/storage"
	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/database"
	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.scrape)

	db, err := do.Invoke[*gorm.DB](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	if cfg.Database.AutoMigrate {
		store := do.MustInvoke[*storage.Store](injector)
		if err := store.AutoMigrate(ctx); err != nil {
			_ = otel.Shutdown(ctx)
			return fmt.Errorf("migrating schema: %w", err)
		}
		logger.Info("schema migrated", slog.String("driver", cfg.Database.Driver))
	}

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	registerHealthCheckers(injector)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests before releasing the pool.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func migrate(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := storage.New(db).AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	logger.Info("schema migrated", slog.String("driver", cfg.Database.Driver))
	return nil
}
