package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Compile-time check that ExpenseService implements ports.ExpenseService.
var _ ports.ExpenseService = (*ExpenseService)(nil)

// ExpenseService implements ports.ExpenseService. Writes resolve the
// referenced category and project inside the same transaction as the
// insert or update, so a reference deleted concurrently is not stored.
type ExpenseService struct {
	deps   Deps
	logger *slog.Logger
}

// NewExpenseService creates an ExpenseService.
func NewExpenseService(deps Deps) *ExpenseService {
	return &ExpenseService{deps: deps, logger: deps.logger()}
}

// ListExpenses returns every live expense, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]expense.Expense, error) {
	s.logger.InfoContext(ctx, "listing expenses")

	es, err := s.deps.Repos.Expenses.List(ctx)
	if err != nil {
		s.logFailure(ctx, "ListExpenses", "", err)
		return nil, err
	}
	return es, nil
}

// GetExpense returns a single live expense.
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*expense.Expense, error) {
	e, err := s.deps.Repos.Expenses.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetExpense", id, err)
		return nil, err
	}
	return e, nil
}

// ListEmployeeExpenses returns the live expenses reported by one employee.
func (s *ExpenseService) ListEmployeeExpenses(ctx context.Context, employeeID string) ([]expense.Expense, error) {
	s.logger.InfoContext(ctx, "listing employee expenses", slog.String("employee_id", employeeID))

	es, err := s.deps.Repos.Expenses.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logFailure(ctx, "ListEmployeeExpenses", employeeID, err)
		return nil, err
	}
	return es, nil
}

// CreateExpense validates the draft and inserts it once its category and
// project references resolve to live rows.
func (s *ExpenseService) CreateExpense(ctx context.Context, draft *expense.Draft) (*expense.Expense, error) {
	s.logger.InfoContext(ctx, "creating expense", slog.String("employee_id", draft.EmployeeID))

	e := draft.Expense()
	if err := e.Validate(); err != nil {
		return nil, err
	}

	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		if err := resolveReferences(ctx, tx, e); err != nil {
			return err
		}
		if err := tx.Expenses.Create(ctx, e); err != nil {
			return fmt.Errorf("inserting expense: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "CreateExpense", "", err)
		return nil, err
	}
	return e, nil
}

// UpdateExpense merges the patch into the stored expense. References are
// checked again only when the patch changes them.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, patch *expense.Patch) (*expense.Expense, error) {
	s.logger.InfoContext(ctx, "updating expense", slog.String("id", id))

	var out *expense.Expense
	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		e, err := tx.Expenses.Get(ctx, id)
		if err != nil {
			return err
		}

		e.Apply(patch)
		if err := e.Validate(); err != nil {
			return err
		}

		check := *e
		if !patch.CategoryID.Set {
			check.CategoryID = nil
		}
		if !patch.ProjectID.Set {
			check.ProjectID = nil
		}
		if err := resolveReferences(ctx, tx, &check); err != nil {
			return err
		}
		if check.CategoryID != nil {
			e.CategoryName = check.CategoryName
		}

		if err := tx.Expenses.Update(ctx, e); err != nil {
			return fmt.Errorf("updating expense: %w", err)
		}
		out = e
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "UpdateExpense", id, err)
		return nil, err
	}
	return out, nil
}

// DeleteExpense soft-deletes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting expense", slog.String("id", id))

	if err := s.deps.Repos.Expenses.SoftDelete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteExpense", id, err)
		return err
	}
	return nil
}

// resolveReferences checks that the category and project of e, when set,
// are live, and fills CategoryName.
func resolveReferences(ctx context.Context, repos ports.Repositories, e *expense.Expense) error {
	if e.CategoryID != nil {
		c, err := repos.Categories.Get(ctx, *e.CategoryID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Invalidf("Expense category %s does not exist", *e.CategoryID)
		}
		if err != nil {
			return fmt.Errorf("looking up expense category: %w", err)
		}
		e.CategoryName = c.Name
	}

	if e.ProjectID != nil {
		_, err := repos.Projects.Get(ctx, *e.ProjectID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Invalidf("Project %s does not exist", *e.ProjectID)
		}
		if err != nil {
			return fmt.Errorf("looking up project: %w", err)
		}
	}
	return nil
}

func (s *ExpenseService) logFailure(ctx context.Context, op, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "expense operation failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
}
