package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

// Logging returns middleware that attaches a request-scoped logger carrying
// request_id and correlation_id to the context, then logs the outcome of the
// request. Server errors are logged at ERROR, client errors at WARN and the
// rest at INFO, except that probe and scrape traffic below 500 is logged at
// DEBUG.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				logHeaders(ctx, child, r)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.LogAttrs(ctx, completionLevel(r.URL.Path, rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, r *http.Request) {
	logger.LogAttrs(ctx, slog.LevelDebug, "request headers",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
	)
}

func completionLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case strings.HasPrefix(path, "/health/") || path == "/metrics":
		return slog.LevelDebug
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
