package storage

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

var _ ports.ExpenseRepository = (*expenseRepo)(nil)

type expenseRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// withCategory loads live expenses, newest first, with their category name.
func (r *expenseRepo) withCategory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("Category").
		Scopes(live("expenses")).
		Order("expenses.date DESC, expenses.id")
}

func (r *expenseRepo) List(ctx context.Context) ([]expense.Expense, error) {
	var rows []expenseRow
	if err := r.withCategory(ctx).Find(&rows).Error; err != nil {
		return nil, translateError(err, msgExpenseNotFound)
	}
	return toExpenses(rows), nil
}

func (r *expenseRepo) Get(ctx context.Context, id string) (*expense.Expense, error) {
	var row expenseRow
	if err := r.withCategory(ctx).Where("expenses.id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err, msgExpenseNotFound)
	}
	e := toExpense(&row)
	return &e, nil
}

func (r *expenseRepo) ListByEmployee(ctx context.Context, employeeID string) ([]expense.Expense, error) {
	var rows []expenseRow
	if err := r.withCategory(ctx).Where("expenses.employee_id = ?", employeeID).Find(&rows).Error; err != nil {
		return nil, translateError(err, msgExpenseNotFound)
	}
	return toExpenses(rows), nil
}

func (r *expenseRepo) Create(ctx context.Context, e *expense.Expense) error {
	row := toExpenseRow(e)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, msgExpenseNotFound)
	}
	e.ID = row.ID
	e.CreatedAt = row.CreatedAt
	e.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *expenseRepo) Update(ctx context.Context, e *expense.Expense) error {
	row := toExpenseRow(e)
	res := r.db.WithContext(ctx).
		Model(&row).
		Scopes(live("expenses")).
		Select("*").
		Omit("id", "created_at", "is_deleted", "deleted_at", clause.Associations).
		Updates(&row)
	if res.Error != nil {
		return translateError(res.Error, msgExpenseNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgExpenseNotFound)
	}
	e.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *expenseRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&expenseRow{}).
		Scopes(live("expenses")).
		Where("id = ?", id).
		Updates(softDelete(r.now()))
	if res.Error != nil {
		return translateError(res.Error, msgExpenseNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgExpenseNotFound)
	}
	return nil
}

func toExpenses(rows []expenseRow) []expense.Expense {
	out := make([]expense.Expense, len(rows))
	for i := range rows {
		out[i] = toExpense(&rows[i])
	}
	return out
}
