package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// MsgDuplicateCategory is returned when a live category already uses a name.
const MsgDuplicateCategory = "Expense Category with this name already exists"

// Compile-time check that CategoryService implements ports.CategoryService.
var _ ports.CategoryService = (*CategoryService)(nil)

// CategoryService implements ports.CategoryService.
type CategoryService struct {
	repos  ports.Repositories
	logger *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(deps Deps) *CategoryService {
	return &CategoryService{repos: deps.Repos, logger: deps.logger()}
}

// ListCategories returns all live categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]category.ExpenseCategory, error) {
	cs, err := s.repos.Categories.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list expense categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cs, nil
}

// GetCategory returns a single live category.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*category.ExpenseCategory, error) {
	c, err := s.repos.Categories.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetCategory", id, err)
		return nil, err
	}
	return c, nil
}

// CreateCategory inserts a category with a name not used by any live one.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*category.ExpenseCategory, error) {
	s.logger.InfoContext(ctx, "creating expense category", slog.String("name", name))

	c := &category.ExpenseCategory{Name: strings.TrimSpace(name)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, c.Name, ""); err != nil {
		return nil, err
	}

	if err := s.repos.Categories.Create(ctx, c); err != nil {
		s.logFailure(ctx, "CreateCategory", "", err)
		return nil, err
	}
	return c, nil
}

// UpdateCategory renames a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id, name string) (*category.ExpenseCategory, error) {
	s.logger.InfoContext(ctx, "updating expense category", slog.String("id", id))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalidf(category.MsgNameRequired)
	}

	c, err := s.repos.Categories.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "UpdateCategory", id, err)
		return nil, err
	}
	if err := s.ensureUnique(ctx, name, id); err != nil {
		return nil, err
	}

	c.Name = name
	if err := s.repos.Categories.Update(ctx, c); err != nil {
		s.logFailure(ctx, "UpdateCategory", id, err)
		return nil, err
	}
	return c, nil
}

// DeleteCategory soft-deletes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting expense category", slog.String("id", id))

	if err := s.repos.Categories.SoftDelete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteCategory", id, err)
		return err
	}
	return nil
}

func (s *CategoryService) ensureUnique(ctx context.Context, name, excludeID string) error {
	taken, err := s.repos.Categories.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("checking expense category name: %w", err)
	}
	if taken {
		return domain.Invalidf(MsgDuplicateCategory)
	}
	return nil
}

func (s *CategoryService) logFailure(ctx context.Context, op, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "expense category operation failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
}
