package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by the given duration.
// The handler runs with a context carrying the deadline, so GORM queries,
// row locks and renderer calls made on its behalf are canceled with it.
//
// The handler's response is buffered. If the handler returns in time the
// buffer is flushed unchanged; otherwise a 504 problem response is written
// and any later writes from the handler fail with http.ErrHandlerTimeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.copyTo(w)
			case <-ctx.Done():
				buf.mu.Lock()
				buf.expired = true
				buf.mu.Unlock()
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedResponse collects a handler's response until the Timeout
// middleware decides whether to forward it. Every field is guarded by mu.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired || b.status != 0 {
		return
	}
	b.status = code
}

// copyTo forwards the buffered response. Callers hold b.mu.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
