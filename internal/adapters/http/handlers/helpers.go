package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// parseID extracts a UUID path parameter from the chi URL params. The
// canonical string form is returned.
func parseID(r *http.Request, param string) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return "", &domain.ValidationError{
			Fields:   map[string]string{param: "must be a valid UUID"},
			Location: domain.LocationPath,
		}
	}
	return id.String(), nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeMessage writes a {"message": msg} body with status 200.
func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msg})
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, decodeError(err))
		return false
	}
	return true
}

// decodeError names the offending field when the decoder can tell which
// one it was.
func decodeError(err error) error {
	field, msg := "body", "invalid JSON"

	var typeErr *json.UnmarshalTypeError
	var dateErr *dto.DateError
	var sizeErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		field, msg = typeErr.Field, "must be of type "+typeErr.Type.String()
	case errors.As(err, &dateErr):
		msg = dateErr.Error()
	case errors.As(err, &sizeErr):
		msg = "request body too large"
	}

	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// pathIDOrFail parses the named path parameter, writing a 400 response and
// returning false when it is not a UUID.
func pathIDOrFail(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	id, err := parseID(r, param)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return "", false
	}
	return id, true
}

// pathParamOrFail returns the named path parameter trimmed, writing a 400
// response and returning false when it is blank. Use it for ids owned by
// other systems, which need not be UUIDs.
func pathParamOrFail(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	v := strings.TrimSpace(chi.URLParam(r, param))
	if v == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields:   map[string]string{param: domain.MsgRequired},
			Location: domain.LocationPath,
		})
		return "", false
	}
	return v, true
}
