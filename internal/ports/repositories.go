package ports

import (
	"context"

	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
)

// Repository ports only ever see live rows: every read filters soft-deleted
// records and every delete is a soft delete.

// ProjectRepository persists project rows.
type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)

	// Get returns domain.ErrNotFound if the project is missing or deleted.
	Get(ctx context.Context, id string) (*project.Project, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*project.Project, error)

	// Create assigns ID and timestamps on p.
	Create(ctx context.Context, p *project.Project) error

	Update(ctx context.Context, p *project.Project) error

	// SoftDelete returns domain.ErrNotFound if no live row matched.
	SoftDelete(ctx context.Context, id string) error
}

// AssignmentRepository persists employee-to-project assignments.
type AssignmentRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]project.Assignment, error)
	CreateBatch(ctx context.Context, as []project.Assignment) ([]project.Assignment, error)
	SoftDeleteByProject(ctx context.Context, projectID string) error
}

// AllocationRepository persists project cost allocations. Reads populate
// CategoryName.
type AllocationRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]project.CostAllocation, error)
	CreateBatch(ctx context.Context, as []project.CostAllocation) ([]project.CostAllocation, error)
	SoftDeleteByProject(ctx context.Context, projectID string) error
}

// MilestoneRepository persists milestones. Reads populate ProjectName.
type MilestoneRepository interface {
	List(ctx context.Context) ([]milestone.Milestone, error)

	// Get returns domain.ErrNotFound if the milestone is missing or deleted.
	Get(ctx context.Context, id string) (*milestone.Milestone, error)

	ListByProject(ctx context.Context, projectID string) ([]milestone.Milestone, error)

	// ListByProjectForUpdate is ListByProject as a locking read inside a
	// transaction: it sees the latest committed rows whatever the isolation
	// level, and holds their locks until the transaction ends. ProjectName
	// is left empty.
	ListByProjectForUpdate(ctx context.Context, projectID string) ([]milestone.Milestone, error)

	Create(ctx context.Context, m *milestone.Milestone) error
	Update(ctx context.Context, m *milestone.Milestone) error
	SoftDelete(ctx context.Context, id string) error
	SoftDeleteByProject(ctx context.Context, projectID string) error
}

// CategoryRepository persists expense categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]category.ExpenseCategory, error)
	Get(ctx context.Context, id string) (*category.ExpenseCategory, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, c *category.ExpenseCategory) error
	Update(ctx context.Context, c *category.ExpenseCategory) error
	SoftDelete(ctx context.Context, id string) error
}

// ExpenseRepository persists expenses. Reads populate CategoryName.
type ExpenseRepository interface {
	List(ctx context.Context) ([]expense.Expense, error)

	// Get returns domain.ErrNotFound if the expense is missing or deleted.
	Get(ctx context.Context, id string) (*expense.Expense, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]expense.Expense, error)
	Create(ctx context.Context, e *expense.Expense) error
	Update(ctx context.Context, e *expense.Expense) error
	SoftDelete(ctx context.Context, id string) error
}

// Repositories groups the repository ports bound to one database handle,
// either the pool or a single transaction.
type Repositories struct {
	Projects    ProjectRepository
	Assignments AssignmentRepository
	Allocations AllocationRepository
	Milestones  MilestoneRepository
	Categories  CategoryRepository
	Expenses    ExpenseRepository
}

// Transactor runs fn inside one database transaction. The Repositories
// passed to fn are bound to that transaction; a non-nil error from fn rolls
// everything back and is returned unchanged.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx Repositories) error) error
}
