package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
)

const (
	testProjectID   = "0b6f1e7a-4c1d-4f59-9a53-2f3c8d7e1a01"
	testMilestoneID = "6d2e9c44-8a0b-4e7e-b3f1-5a9c0d2e7b02"
	testCategoryID  = "9f4a2b61-1e3c-47d8-a6b5-c7d8e9f0a103"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withID(r *http.Request, id string) *http.Request {
	return withChiParams(r, map[string]string{"id": id})
}

func validProject() project.Project {
	return project.Project{
		ID:        testProjectID,
		Name:      "Website relaunch",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Budget:    decimal.NewFromInt(50000),
		Status:    project.StatusActive,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validAggregate() project.Aggregate {
	return project.Aggregate{
		Project: validProject(),
		Assignments: []project.Assignment{
			{ID: "a-1", ProjectID: testProjectID, EmployeeID: "e-1", Role: project.DefaultRole, AssignedAt: testTime},
		},
		Allocations: []project.CostAllocation{
			{ID: "c-1", ProjectID: testProjectID, CategoryID: testCategoryID, CategoryName: "Travel", AllocatedAmount: decimal.NewFromInt(1200)},
		},
	}
}

func validMilestone() milestone.Milestone {
	return milestone.Milestone{
		ID:          testMilestoneID,
		ProjectID:   testProjectID,
		ProjectName: "Website relaunch",
		Name:        "Design",
		Percentage:  30,
		TargetDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireDetail(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != want {
		t.Errorf("detail = %q, want %q", resp.Detail, want)
	}
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}
