package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/projectledger/internal/adapters/http"
	"github.com/jsamuelsen11/projectledger/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectledger/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/projectledger/internal/adapters/clients/renderer"
	"github.com/jsamuelsen11/projectledger/internal/adapters/storage"
	"github.com/jsamuelsen11/projectledger/internal/app"
	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/database"
	"github.com/jsamuelsen11/projectledger/internal/platform/health"
	"github.com/jsamuelsen11/projectledger/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectledger/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

const (
	rendererServiceName = "renderer"

	// healthCheckTimeout bounds each readiness check so one hung dependency
	// still leaves time to report the others.
	healthCheckTimeout = 2 * time.Second
)

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled. scrape is set only for the prometheus exporter.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
	scrape  nethttp.Handler
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, scrape, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
		scrape:  scrape,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, scrape nethttp.Handler) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		return database.Open(&cfg.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (*storage.Store, error) {
		return storage.New(do.MustInvoke[*gorm.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (app.Deps, error) {
		store := do.MustInvoke[*storage.Store](i)
		return app.Deps{
			Tx:      store,
			Repos:   store.Repositories(),
			Metrics: do.MustInvoke[*telemetry.Metrics](i),
			Logger:  logger,
		}, nil
	})

	// Document renderer.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Renderer, rendererServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*renderer.Client, error) {
		return renderer.New(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(do.MustInvoke[app.Deps](i), cfg.App.ListWorkers), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MilestoneService, error) {
		return app.NewMilestoneService(do.MustInvoke[app.Deps](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoryService, error) {
		return app.NewCategoryService(do.MustInvoke[app.Deps](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExpenseService, error) {
		return app.NewExpenseService(do.MustInvoke[app.Deps](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReportService, error) {
		return app.NewReportService(do.MustInvoke[*renderer.Client](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		projects := do.MustInvoke[ports.ProjectService](i)
		milestones := do.MustInvoke[ports.MilestoneService](i)
		return adapthttp.Handlers{
			Projects:   handlers.NewProjectHandler(projects, milestones),
			Milestones: handlers.NewMilestoneHandler(milestones),
			Categories: handlers.NewCategoryHandler(do.MustInvoke[ports.CategoryService](i)),
			Expenses:   handlers.NewExpenseHandler(do.MustInvoke[ports.ExpenseService](i)),
			Reports:    handlers.NewReportHandler(do.MustInvoke[ports.ReportService](i)),
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Metrics:    scrape,
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthCheckers adds the readiness dependencies once the graph is
// wired.
func registerHealthCheckers(injector do.Injector) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(database.NewHealthChecker(do.MustInvoke[*gorm.DB](injector)))
	registry.Register(do.MustInvoke[*renderer.Client](injector))
}
