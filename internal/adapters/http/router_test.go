package http_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/projectledger/internal/adapters/http"
	"github.com/jsamuelsen11/projectledger/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/ports"
	"github.com/jsamuelsen11/projectledger/mocks"
)

type routerMocks struct {
	projects   *mocks.MockProjectService
	milestones *mocks.MockMilestoneService
	categories *mocks.MockCategoryService
	expenses   *mocks.MockExpenseService
	reports    *mocks.MockReportService
	registry   *mocks.MockHealthRegistry
}

func newHandlers(t *testing.T) (adapthttp.Handlers, routerMocks) {
	t.Helper()
	m := routerMocks{
		projects:   mocks.NewMockProjectService(t),
		milestones: mocks.NewMockMilestoneService(t),
		categories: mocks.NewMockCategoryService(t),
		expenses:   mocks.NewMockExpenseService(t),
		reports:    mocks.NewMockReportService(t),
		registry:   mocks.NewMockHealthRegistry(t),
	}
	h := adapthttp.Handlers{
		Projects:   handlers.NewProjectHandler(m.projects, m.milestones),
		Milestones: handlers.NewMilestoneHandler(m.milestones),
		Categories: handlers.NewCategoryHandler(m.categories),
		Expenses:   handlers.NewExpenseHandler(m.expenses),
		Reports:    handlers.NewReportHandler(m.reports),
		Health:     handlers.NewHealthHandler(m.registry),
	}
	return h, m
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()
	h, m := newHandlers(t)
	return adapthttp.NewRouter(h), m
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	want := []string{
		"DELETE /api/v1/expense-categories/{id}",
		"DELETE /api/v1/expenses/{id}",
		"DELETE /api/v1/milestones/{id}",
		"DELETE /api/v1/projects/{id}",
		"GET /api/v1/expense-categories/",
		"GET /api/v1/expense-categories/{id}",
		"GET /api/v1/expenses/",
		"GET /api/v1/expenses/employee/{employeeId}",
		"GET /api/v1/expenses/{id}",
		"GET /api/v1/milestones/",
		"GET /api/v1/milestones/progress",
		"GET /api/v1/milestones/{id}",
		"GET /api/v1/projects/",
		"GET /api/v1/projects/{id}",
		"GET /api/v1/projects/{id}/milestones",
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/expense-categories/",
		"POST /api/v1/expenses/",
		"POST /api/v1/milestones/",
		"POST /api/v1/projects/",
		"POST /api/v1/projects/report",
		"PUT /api/v1/expense-categories/{id}",
		"PUT /api/v1/expenses/{id}",
		"PUT /api/v1/milestones/{id}",
		"PUT /api/v1/projects/{id}",
		"PUT /api/v1/projects/{id}/status",
	}

	registered := map[string]bool{}
	err := chi.Walk(router.(chi.Routes), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	var missing []string
	for _, route := range want {
		if !registered[route] {
			missing = append(missing, route)
		}
	}
	if len(missing) > 0 {
		t.Errorf("routes not registered:\n%s", strings.Join(missing, "\n"))
	}
	if registered["GET /metrics"] {
		t.Error("GET /metrics registered without a metrics handler")
	}
}

func TestRouter_MetricsRouteIsOptional(t *testing.T) {
	t.Parallel()

	h, _ := newHandlers(t)
	without := httptest.NewRecorder()
	adapthttp.NewRouter(h).ServeHTTP(without, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	h.Metrics = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# HELP projectledger_project_writes_total\n"))
	})
	with := httptest.NewRecorder()
	adapthttp.NewRouter(h).ServeHTTP(with, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if without.Code != http.StatusNotFound {
		t.Errorf("without handler: status = %d, want 404", without.Code)
	}
	if with.Code != http.StatusOK {
		t.Errorf("with handler: status = %d, want 200", with.Code)
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	h, m := newHandlers(t)
	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router := adapthttp.NewRouter(h, tag("request-id"), tag("logging"), tag("timeout"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if want := []string{"request-id", "logging", "timeout"}; !slices.Equal(order, want) {
		t.Errorf("middleware order = %v, want %v", order, want)
	}
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	const id = "0b6f1e7a-4c1d-4f59-9a53-2f3c8d7e1a01"

	tests := []struct {
		name   string
		method string
		path   string
		expect func(m routerMocks)
		want   int
	}{
		{
			name:   "project list without trailing slash",
			method: http.MethodGet,
			path:   "/api/v1/projects",
			expect: func(m routerMocks) {
				m.projects.EXPECT().ListProjects(mock.Anything).Return([]ports.ProjectSummary{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "progress is not read as a milestone id",
			method: http.MethodGet,
			path:   "/api/v1/milestones/progress",
			expect: func(m routerMocks) {
				m.milestones.EXPECT().Progress(mock.Anything).Return([]milestone.Progress{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "path id reaches the service",
			method: http.MethodDelete,
			path:   "/api/v1/projects/" + id,
			expect: func(m routerMocks) {
				m.projects.EXPECT().DeleteProject(mock.Anything, id).Return(nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "employee expenses are not read as an expense id",
			method: http.MethodGet,
			path:   "/api/v1/expenses/employee/emp-0042",
			expect: func(m routerMocks) {
				m.expenses.EXPECT().ListEmployeeExpenses(mock.Anything, "emp-0042").Return([]expense.Expense{}, nil)
			},
			want: http.StatusOK,
		},
		{name: "unknown path", method: http.MethodGet, path: "/api/v2/projects", want: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodPatch, path: "/api/v1/projects/" + id, want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t)
			if tt.expect != nil {
				tt.expect(m)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
