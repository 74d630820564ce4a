package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The panic value and stack are logged with the request and route
// identifiers; clients only see the generic 500 detail. Nothing is written
// when the handler already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, fmt.Errorf("%w: %v", errPanic, v))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
