package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes sorted by name.
// Multi-value headers are joined with a comma. Headers listed in
// logging.SensitiveHeaders are replaced by "[REDACTED]".
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		value := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
