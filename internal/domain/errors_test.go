package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{name: "no fields", want: "validation error"},
		{
			name:   "single field",
			fields: map[string]string{"name": domain.MsgRequired},
			want:   "validation error: name: is required",
		},
		{
			name: "fields sorted",
			fields: map[string]string{
				"targetDate": domain.MsgRequired,
				"percentage": "must be between 0 and 100, got 140",
			},
			want: "validation error: percentage: must be between 0 and 100, got 140; targetDate: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := &domain.ValidationError{Fields: tt.fields}
			if got := verr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}

			var target *domain.ValidationError
			wrapped := fmt.Errorf("creating milestone: %w", verr)
			if !errors.Is(wrapped, domain.ErrValidation) || !errors.As(wrapped, &target) {
				t.Errorf("wrapped %v does not match ErrValidation and *ValidationError", wrapped)
			}
		})
	}
}

func TestError_MessageAndKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "not found keeps message verbatim",
			err:     domain.NotFoundf("Project not found"),
			kind:    domain.ErrNotFound,
			message: "Project not found",
		},
		{
			name:    "invalid formats arguments",
			err:     domain.Invalidf("Currently used: %d%%.", 90),
			kind:    domain.ErrValidation,
			message: "Currently used: 90%.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
			if errors.Is(tt.err, domain.ErrConflict) {
				t.Errorf("errors.Is(%v, ErrConflict) = true, want false", tt.err)
			}
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrForbidden,
		domain.ErrUnavailable,
	}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct kinds", a, b)
			}
		}
	}
}
