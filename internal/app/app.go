// Package app provides application services that orchestrate use cases by
// coordinating domain rules with the storage and client ports. Writes that
// touch more than one table run inside a single transaction.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectledger/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Deps bundles the collaborators shared by the application services.
// Metrics may be nil; counters are then skipped.
type Deps struct {
	Tx      ports.Transactor
	Repos   ports.Repositories
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

func (d Deps) projectWrite(ctx context.Context, op string) {
	if d.Metrics == nil || d.Metrics.ProjectWrites == nil {
		return
	}
	d.Metrics.ProjectWrites.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(op)))
}

func (d Deps) allocationRejected(ctx context.Context, op string) {
	if d.Metrics == nil || d.Metrics.MilestoneAllocationRejected == nil {
		return
	}
	d.Metrics.MilestoneAllocationRejected.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(op)))
}
