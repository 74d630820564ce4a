// Package httpclient provides the instrumented HTTP client used for calls to
// external collaborators such as the PDF renderer.
//
// A call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry (header injection per attempt) → HTTP
//
// Requests carry their body in memory so every attempt sends the same bytes,
// and responses come back fully read, capped at the configured size:
//
//	client := httpclient.New(&cfg.Renderer, "renderer", metrics, logger)
//	resp, err := client.Send(ctx, httpclient.Request{
//	    Method:      http.MethodPost,
//	    Path:        "/forms/chromium/convert/html",
//	    ContentType: contentType,
//	    Body:        form,
//	})
//
// Inbound middleware stores the IDs forwarded as X-Request-ID and
// X-Correlation-ID:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/telemetry"
)

// DefaultMaxResponseBytes applies when the config leaves the cap at zero.
const DefaultMaxResponseBytes int64 = 32 << 20

var (
	// ErrRetriesExhausted is returned, together with the last response, when
	// every attempt got a retryable status.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrResponseTooLarge is returned when a body exceeds the size cap.
	ErrResponseTooLarge = errors.New("response body too large")
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the ID sent as X-Request-ID on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the ID sent as X-Correlation-ID on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Request describes one outbound call relative to the client's base URL.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Accept      string
	Body        []byte
}

// Response is a downstream reply whose body has already been read and closed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// retryPolicy mirrors config.RetryConfig without exporting the config type
// through the client API.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is an instrumented HTTP client for one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	maxBody     int64
	breaker     *gobreaker.CircuitBreaker[*Response]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a Client for serviceName, which labels traces, metrics and the
// health check. metrics and logger may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	breaker := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller that gave up says nothing about the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	maxBody := cfg.MaxResponseBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxResponseBytes
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		maxBody:     maxBody,
		breaker:     breaker,
		limiter:     limiter,
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Send performs req and returns the downstream response.
//
// Any status that is not retried (2xx, 3xx and 4xx other than 429) comes back
// as a Response with a nil error. When every attempt got 429 or 5xx, both the
// last Response and an error wrapping ErrRetriesExhausted are returned. An
// open circuit, a transport failure or an oversized body yield a nil Response.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.sendWithRetry(spanCtx, req)
		finishSpan(span, resp, err)
		return resp, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)

	return resp, err
}

// Name returns the downstream service identifier. Together with HealthCheck
// it satisfies ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the downstream from the circuit breaker state without a
// network call: closed is healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	return tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", c.baseURL+req.Path),
			attribute.String("peer.service", c.serviceName),
			attribute.Int("http.request.body.size", len(req.Body)),
		),
	)
}

func finishSpan(span trace.Span, resp *Response, err error) {
	if resp != nil {
		span.SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
			attribute.Int("http.response.body.size", len(resp.Body)),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so open-circuit rejections are
// counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if err == nil && statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
