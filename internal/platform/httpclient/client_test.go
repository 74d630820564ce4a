package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func get(path string) httpclient.Request {
	return httpclient.Request{Method: http.MethodGet, Path: path}
}

// tripBreaker drives a client configured with MaxFailures=1 into the open state.
func tripBreaker(t *testing.T, client *httpclient.Client) {
	t.Helper()
	if _, err := client.Send(context.Background(), get("/trip")); err == nil {
		t.Fatal("Send() error = nil, want failure to trip the breaker")
	}
}

func TestSend_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pdf" || r.Header.Get("Accept") != "application/pdf" {
			t.Errorf("request = %s Accept=%q", r.URL.Path, r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "renderer", nil, nil)

	resp, err := client.Send(context.Background(), httpclient.Request{
		Method: http.MethodGet,
		Path:   "/pdf",
		Accept: "application/pdf",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(resp.Body) != "%PDF" {
		t.Errorf("body = %q, want %%PDF", resp.Body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
}

func TestSend_RetriesReplayBody(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "text/plain" || string(body) != "payload" {
			t.Errorf("attempt %d: %s %q %q", n, r.Method, r.Header.Get("Content-Type"), body)
		}
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "renderer", nil, nil)

	resp, err := client.Send(context.Background(), httpclient.Request{
		Method:      http.MethodPost,
		Path:        "/convert",
		ContentType: "text/plain",
		Body:        []byte("payload"),
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server calls = %d, want 3", got)
	}
}

func TestSend_StatusHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantCalls int32
		wantErr   error
	}{
		{name: "bad request is final", status: http.StatusBadRequest, wantCalls: 1},
		{name: "not found is final", status: http.StatusNotFound, wantCalls: 1},
		{name: "too many requests retried", status: http.StatusTooManyRequests, wantCalls: 3, wantErr: httpclient.ErrRetriesExhausted},
		{name: "server error retried", status: http.StatusInternalServerError, wantCalls: 3, wantErr: httpclient.ErrRetriesExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"nope"}`))
			}))
			t.Cleanup(srv.Close)

			cfg := testConfig(srv.URL)
			cfg.CircuitBreaker.MaxFailures = 10
			client := httpclient.New(cfg, "renderer", nil, nil)

			resp, err := client.Send(context.Background(), get("/x"))

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Send() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Send() error = %v, want %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Send() response = nil, want last response")
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if string(resp.Body) != `{"detail":"nope"}` {
				t.Errorf("body = %q, want the downstream detail", resp.Body)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("server calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestSend_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.MaxResponseBytes = 16
	client := httpclient.New(cfg, "renderer", nil, nil)

	resp, err := client.Send(context.Background(), get("/big"))
	if !errors.Is(err, httpclient.ErrResponseTooLarge) {
		t.Fatalf("Send() error = %v, want ErrResponseTooLarge", err)
	}
	if resp != nil {
		t.Errorf("Send() response = %+v, want nil", resp)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (oversized body is not retried)", got)
	}
}

func TestSend_BodyAtLimitAccepted(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 16)))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.MaxResponseBytes = 16
	client := httpclient.New(cfg, "renderer", nil, nil)

	resp, err := client.Send(context.Background(), get("/exact"))
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(resp.Body) != 16 {
		t.Errorf("len(body) = %d, want 16", len(resp.Body))
	}
}

func TestSend_HeaderInjection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name:     "ids forwarded",
			ctx:      httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1"),
			wantReq:  "req-1",
			wantCorr: "corr-1",
		},
		{name: "no ids", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr atomic.Value
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReq.Store(r.Header.Get("X-Request-ID"))
				gotCorr.Store(r.Header.Get("X-Correlation-ID"))
				w.WriteHeader(http.StatusNoContent)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "renderer", nil, nil)
			if _, err := client.Send(tt.ctx, get("/ids")); err != nil {
				t.Fatalf("Send() error = %v", err)
			}

			if got := gotReq.Load(); got != tt.wantReq {
				t.Errorf("X-Request-ID = %q, want %q", got, tt.wantReq)
			}
			if got := gotCorr.Load(); got != tt.wantCorr {
				t.Errorf("X-Correlation-ID = %q, want %q", got, tt.wantCorr)
			}
		})
	}
}

func TestSend_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "renderer", nil, nil)

	tripBreaker(t, client)
	before := calls.Load()

	resp, err := client.Send(context.Background(), get("/cb"))
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Send() error = %v, want gobreaker.ErrOpenState", err)
	}
	if resp != nil {
		t.Errorf("Send() response = %+v, want nil while open", resp)
	}
	if calls.Load() != before {
		t.Error("server was hit while the circuit was open")
	}
}

func TestSend_CircuitBreakerRecovers(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "renderer", nil, nil)

	tripBreaker(t, client)
	time.Sleep(150 * time.Millisecond)
	failing.Store(false)

	resp, err := client.Send(context.Background(), get("/recover"))
	if err != nil {
		t.Fatalf("Send() error = %v, want the half-open probe to pass", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestSend_CanceledCallerDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "renderer", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Send(ctx, get("/cancel")); !errors.Is(err, context.Canceled) {
		t.Fatalf("Send() error = %v, want context.Canceled", err)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil (cancellation is not a downstream failure)", err)
	}
}

func TestSend_ZeroAttemptsRejected(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:0")
	cfg.Retry.MaxAttempts = 0
	client := httpclient.New(cfg, "renderer", nil, nil)

	if _, err := client.Send(context.Background(), get("/")); err == nil {
		t.Fatal("Send() error = nil, want maxAttempts error")
	}
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost"), "renderer", nil, nil)

	if got := client.Name(); got != "renderer" {
		t.Errorf("Name() = %q, want renderer", got)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "renderer", nil, nil)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("fresh client HealthCheck() = %v, want nil", err)
	}

	tripBreaker(t, client)
	err := client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("open HealthCheck() = %v, want error containing \"failing\"", err)
	}

	time.Sleep(150 * time.Millisecond)
	err = client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("half-open HealthCheck() = %v, want error containing \"degraded\"", err)
	}
}
