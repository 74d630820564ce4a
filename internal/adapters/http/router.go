// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectledger/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter. Metrics is
// optional; when nil no /metrics route is registered.
type Handlers struct {
	Projects   *handlers.ProjectHandler
	Milestones *handlers.MilestoneHandler
	Categories *handlers.CategoryHandler
	Expenses   *handlers.ExpenseHandler
	Reports    *handlers.ReportHandler
	Health     *handlers.HealthHandler
	Metrics    http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health and scrape endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Projects.ListProjects)
			r.Post("/", h.Projects.CreateProject)
			r.Post("/report", h.Reports.RenderReport)
			r.Get("/{id}", h.Projects.GetProject)
			r.Put("/{id}", h.Projects.UpdateProject)
			r.Delete("/{id}", h.Projects.DeleteProject)
			r.Put("/{id}/status", h.Projects.UpdateProjectStatus)
			r.Get("/{id}/milestones", h.Projects.ListProjectMilestones)
		})

		r.Route("/milestones", func(r chi.Router) {
			r.Get("/", h.Milestones.ListMilestones)
			r.Post("/", h.Milestones.CreateMilestone)
			r.Get("/progress", h.Milestones.Progress)
			r.Get("/{id}", h.Milestones.GetMilestone)
			r.Put("/{id}", h.Milestones.UpdateMilestone)
			r.Delete("/{id}", h.Milestones.DeleteMilestone)
		})

		r.Route("/expense-categories", func(r chi.Router) {
			r.Get("/", h.Categories.ListCategories)
			r.Post("/", h.Categories.CreateCategory)
			r.Get("/{id}", h.Categories.GetCategory)
			r.Put("/{id}", h.Categories.UpdateCategory)
			r.Delete("/{id}", h.Categories.DeleteCategory)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.Expenses.ListExpenses)
			r.Post("/", h.Expenses.CreateExpense)
			r.Get("/employee/{employeeId}", h.Expenses.ListEmployeeExpenses)
			r.Get("/{id}", h.Expenses.GetExpense)
			r.Put("/{id}", h.Expenses.UpdateExpense)
			r.Delete("/{id}", h.Expenses.DeleteExpense)
		})
	})

	return r
}
