// Package telemetry provides OpenTelemetry tracer and meter initialization
// with stdout (development), OTLP/HTTP (production) and Prometheus (pull)
// exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "projectledger", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization. The returned handler is non-nil only for the
// Prometheus exporter and serves the scrape endpoint:
//
//	mp, scrape, err := telemetry.InitMeter(ctx, "projectledger", telemetry.ExporterPrometheus, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.ProjectWrites.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

const instrumentationScope = "github.com/jsamuelsen11/projectledger"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// MilestoneAllocationRejected counts milestone writes refused because
	// the project would exceed 100 percent.
	MilestoneAllocationRejected metric.Int64Counter
	// ProjectWrites counts committed project transactions by operation.
	ProjectWrites metric.Int64Counter
}

var errUnsupportedExporter = errors.New("unsupported exporter")

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "stdout" pretty-prints
// spans, "otlp" ships them over OTLP/HTTP to endpoint. With "prometheus"
// spans are created and propagated but not exported.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	switch exporter {
	case ExporterStdout, ExporterOTLP:
		spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(spanExporter))
	case ExporterPrometheus:
		// Metrics only; traces stay in-process.
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// "stdout" and "otlp" push on a periodic reader. "prometheus" registers a
// pull reader on a dedicated registry, together with Go runtime and process
// collectors, and returns the promhttp handler for that registry.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, http.Handler, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	var (
		reader sdkmetric.Reader
		scrape http.Handler
	)

	switch exporter {
	case ExporterStdout, ExporterOTLP:
		metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("creating metric exporter: %w", err)
		}
		reader = sdkmetric.NewPeriodicReader(metricExporter)
	case ExporterPrometheus:
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		promExporter, err := otelprom.New(otelprom.WithRegisterer(reg))
		if err != nil {
			return nil, nil, fmt.Errorf("creating prometheus exporter: %w", err)
		}
		reader = promExporter
		scrape = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, scrape, nil
}

// NewMetrics creates all metric instruments on the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope)
	var (
		m   Metrics
		err error
	)

	histograms := []struct {
		dst  *metric.Float64Histogram
		name string
		desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing HTTP requests"},
	}
	for _, h := range histograms {
		*h.dst, err = meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Total number of incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Total number of outgoing HTTP requests", "{request}"},
		{
			&m.MilestoneAllocationRejected, "projectledger.milestone.allocation.rejected",
			"Milestone writes refused because the project would exceed 100 percent", "{milestone}",
		},
		{&m.ProjectWrites, "projectledger.project.writes", "Committed project write transactions", "{transaction}"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
	}

	return &m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// otlpTarget validates endpoint and reports the host:port to dial and
// whether TLS should be skipped.
func otlpTarget(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errors.New("otlp exporter requires an endpoint")
	}
	return hostPort(endpoint), !isHTTPS(endpoint), nil
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	if exporter != ExporterOTLP {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, insecure, err := otlpTarget(endpoint)
	if err != nil {
		return nil, err
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	if exporter != ExporterOTLP {
		return stdoutmetric.New()
	}
	host, insecure, err := otlpTarget(endpoint)
	if err != nil {
		return nil, err
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// hostPort turns "http://otel-collector:4318" into "otel-collector:4318".
// Bare host:port values pass through.
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
