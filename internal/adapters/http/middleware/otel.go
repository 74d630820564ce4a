package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/projectledger/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/projectledger/internal/adapters/http/middleware"

// OTelOption customizes the OpenTelemetry middleware.
type OTelOption func(*otelSettings)

type otelSettings struct {
	tracers    trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(s *otelSettings) { s.tracers = tp }
}

// WithPropagator replaces the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) OTelOption {
	return func(s *otelSettings) { s.propagator = p }
}

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context the caller sent, and records the request duration and count. Span
// names and metric labels use the chi route pattern rather than the raw
// path, so project and milestone IDs never become label values. A nil
// metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics, opts ...OTelOption) func(http.Handler) http.Handler {
	s := otelSettings{}
	for _, opt := range opts {
		opt(&s)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			tracers, propagator := s.tracers, s.propagator
			if tracers == nil {
				tracers = otel.GetTracerProvider()
			}
			if propagator == nil {
				propagator = otel.GetTextMapPropagator()
			}

			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracers.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(r)
			status := rw.statusCode
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", status),
				attribute.Int64("http.response.body.size", rw.written),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, status, time.Since(start))
		})
	}
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}

// routePattern returns the matched chi pattern, or the raw path outside a chi
// router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
