package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/adapters/http/middleware"
)

func TestTimeout_ForwardsTimelyResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "explicit status and headers",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/projects/p-1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"p-1"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"p-1"}`,
			wantHeader: "/api/v1/projects/p-1",
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("[]"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name: "second WriteHeader ignored",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "handler sees the deadline",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if _, ok := r.Context().Deadline(); !ok {
					w.WriteHeader(http.StatusTeapot)
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(time.Second)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projects", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantHeader {
				t.Errorf("Location = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_Expired(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/api/v1/projects/p-1")
		<-r.Context().Done()
		time.Sleep(20 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/projects/p-1", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if rec.Header().Get("Location") != "" {
		t.Error("header set by the timed-out handler reached the client")
	}

	var problem dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	if problem.Status != http.StatusGatewayTimeout || problem.Instance != "/api/v1/projects/p-1" {
		t.Errorf("problem = %+v, want 504 for /api/v1/projects/p-1", problem)
	}

	if err := <-writeErr; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Errorf("late Write error = %v, want http.ErrHandlerTimeout", err)
	}
}
