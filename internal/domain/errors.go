package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError collects per-field problems with a request, keyed by JSON
// field or parameter name. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string

	// Location says where the fields were read from, one of the
	// Location constants. Empty means LocationBody.
	Location string
}

// Request parts a ValidationError can point at.
const (
	LocationBody = "body"
	LocationPath = "path"
)

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Error carries a message safe to show API clients, such as "Project not
// found". Kind is one of the error kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFoundf returns an *Error of kind ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalidf returns an *Error of kind ErrValidation with a formatted message.
// Use it for business-rule rejections that are not tied to a single field.
func Invalidf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}
