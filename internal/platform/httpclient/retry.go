package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

// jitterFraction bounds the jitter applied to each delay (±25%).
const jitterFraction = 0.25

// sendWithRetry runs up to maxAttempts attempts of req. Each attempt builds a
// fresh *http.Request over the same body bytes and reads the reply in full,
// so no response body outlives this call.
func (c *Client) sendWithRetry(ctx context.Context, req Request) (*Response, error) {
	if c.retry.maxAttempts <= 0 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	var (
		last       *Response
		lastErr    error
		retryAfter time.Duration
	)

	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return last, err
			}
		}
		retryAfter = 0

		resp, err := c.attempt(ctx, req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			last, lastErr = nil, err
			continue
		}

		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		last = resp
		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	}

	if last != nil {
		return last, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, c.retry.maxAttempts, lastErr)
	}
	return nil, lastErr
}

// attempt performs one round trip with the request and correlation headers
// taken from ctx.
func (c *Client) attempt(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.Accept != "" {
		httpReq.Header.Set("Accept", req.Accept)
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		httpReq.Header.Set("X-Correlation-ID", id)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := readLimited(httpResp.Body, c.maxBody)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

// readLimited reads r to EOF, failing with ErrResponseTooLarge once more than
// limit bytes arrive.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrResponseTooLarge, limit)
	}
	return data, nil
}

// waitForRetry logs the retry at WARN and sleeps for the backoff delay or
// until ctx ends. A Retry-After hint raises the delay up to maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := max(backoff(attempt, c.retry), min(retryAfter, c.retry.maxInterval))

	logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter reads a Retry-After value given either as delta seconds or
// as an HTTP-date relative to now. Past dates and garbage yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0
	}
	return max(at.Sub(now), 0)
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): exponential growth capped at maxInterval, then ±25% jitter.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = min(delay, float64(p.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay, 0))
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation, expired deadlines and oversized bodies are final.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrResponseTooLarge):
		return false
	default:
		return true
	}
}

// isRetryableStatus reports 429 and any 5xx as retryable.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
