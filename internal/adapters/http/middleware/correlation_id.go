package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/projectledger/internal/platform/httpclient"
)

const (
	headerCorrelationID = "X-Correlation-ID"

	maxHeaderIDLen = 128
)

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx and hands it to the outbound client so
// renderer calls carry the same X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID returns middleware that propagates the caller's
// X-Correlation-ID. A missing or malformed header is replaced by the request
// ID, so it must run after RequestID. The chosen value is echoed in the
// response header.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validHeaderID(id) {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

// validHeaderID reports whether an inbound X-Request-ID or X-Correlation-ID
// is safe to reuse. It accepts short tokens made of letters, digits and
// . _ - : characters. Anything else is dropped before it reaches the logs.
func validHeaderID(id string) bool {
	if id == "" || len(id) > maxHeaderIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.' || c == ':':
		default:
			return false
		}
	}
	return true
}
