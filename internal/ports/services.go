package ports

import (
	"context"

	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
)

// ProjectService defines the service port for the project aggregate.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns every live project with its assignments and
	// milestone totals.
	ListProjects(ctx context.Context) ([]ProjectSummary, error)

	// GetProject returns the project with assignments, allocations and
	// milestones. Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*ProjectDetail, error)

	// CreateProject writes the project, one assignment per employee and one
	// row per cost allocation in a single transaction.
	// Returns domain.ErrValidation if the draft is rejected.
	CreateProject(ctx context.Context, draft *project.Draft) (*project.Aggregate, error)

	// UpdateProject applies the patch. Assignments and allocations present
	// in the patch replace the stored sets. All writes share one transaction.
	// Returns domain.ErrNotFound if the project does not exist.
	UpdateProject(ctx context.Context, id string, patch *project.Patch) (*project.Aggregate, error)

	// DeleteProject soft-deletes the project and everything it owns.
	// Returns domain.ErrNotFound if the project is missing or already deleted.
	DeleteProject(ctx context.Context, id string) error

	// UpdateProjectStatus sets the lifecycle status.
	UpdateProjectStatus(ctx context.Context, id string, status project.Status) (*project.Project, error)
}

// ProjectSummary is a list entry: the project, its assignments and the
// totals of its milestones.
type ProjectSummary struct {
	Project     project.Project
	Assignments []project.Assignment
	Milestones  milestone.Totals
}

// ProjectDetail is the full read model of a single project.
type ProjectDetail struct {
	project.Aggregate
	Milestones []milestone.Milestone
}

// MilestoneService defines the service port for milestones.
type MilestoneService interface {
	ListMilestones(ctx context.Context) ([]milestone.Milestone, error)

	// GetMilestone returns domain.ErrNotFound if the milestone does not exist.
	GetMilestone(ctx context.Context, id string) (*milestone.Milestone, error)

	// ListProjectMilestones returns domain.ErrNotFound if the project does
	// not exist or has no milestones.
	ListProjectMilestones(ctx context.Context, projectID string) ([]milestone.Milestone, error)

	// CreateMilestone rejects duplicate names within the project and any
	// percentage that would take the project past 100.
	CreateMilestone(ctx context.Context, draft *milestone.Draft) (*milestone.Milestone, error)

	// UpdateMilestone applies the patch under the same rules as create,
	// with the milestone itself left out of the percentage sum.
	UpdateMilestone(ctx context.Context, id string, patch *milestone.Patch) (*milestone.Milestone, error)

	DeleteMilestone(ctx context.Context, id string) error

	// Progress returns the achieved and remaining percentage per live project.
	Progress(ctx context.Context) ([]milestone.Progress, error)
}

// CategoryService defines the service port for expense categories.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]category.ExpenseCategory, error)
	GetCategory(ctx context.Context, id string) (*category.ExpenseCategory, error)
	CreateCategory(ctx context.Context, name string) (*category.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, id, name string) (*category.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

// ExpenseService defines the service port for employee expenses.
type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]expense.Expense, error)

	// GetExpense returns domain.ErrNotFound if the expense does not exist.
	GetExpense(ctx context.Context, id string) (*expense.Expense, error)

	// ListEmployeeExpenses returns the live expenses of one employee, which
	// may be none.
	ListEmployeeExpenses(ctx context.Context, employeeID string) ([]expense.Expense, error)

	// CreateExpense rejects references to missing or deleted categories and
	// projects with domain.ErrValidation.
	CreateExpense(ctx context.Context, draft *expense.Draft) (*expense.Expense, error)

	// UpdateExpense applies the patch under the same reference rules as
	// create.
	UpdateExpense(ctx context.Context, id string, patch *expense.Patch) (*expense.Expense, error)

	DeleteExpense(ctx context.Context, id string) error
}

// ReportService defines the service port for project report rendering.
type ReportService interface {
	// RenderProjectReport returns the PDF rendering of html.
	// Returns domain.ErrValidation for empty input.
	RenderProjectReport(ctx context.Context, html string) ([]byte, error)
}
