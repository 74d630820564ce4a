package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// msgInternal replaces the detail of unclassified errors, which may carry
// SQL or driver text.
const msgInternal = "An unexpected error occurred"

// NewErrorResponse builds the problem document for err. The detail is the
// error text except for 500s, whose text may carry SQL or driver output.
// Instance is the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = msgInternal
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to encode error response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

// statusByKind is checked in order; the first sentinel err wraps decides the
// status. Deadlines come first so a query or renderer call cut short by the
// request timeout reports 504 whatever else it wraps.
var statusByKind = []struct {
	kind   error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func domainErrorToStatus(err error) int {
	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// validationFieldsToDetails lists field errors ordered by field, each
// located in the request part verr names.
func validationFieldsToDetails(verr *domain.ValidationError) []ErrorDetail {
	part := verr.Location
	if part == "" {
		part = domain.LocationBody
	}

	details := make([]ErrorDetail, 0, len(verr.Fields))
	for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
		details = append(details, ErrorDetail{Location: part + "." + field, Message: verr.Fields[field]})
	}
	return details
}
