package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

var _ ports.CategoryRepository = (*categoryRepo)(nil)

type categoryRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func (r *categoryRepo) List(ctx context.Context) ([]category.ExpenseCategory, error) {
	var rows []categoryRow
	err := r.db.WithContext(ctx).
		Scopes(live("expense_categories")).
		Order("name, id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, msgCategoryNotFound)
	}

	out := make([]category.ExpenseCategory, len(rows))
	for i := range rows {
		out[i] = toCategory(&rows[i])
	}
	return out, nil
}

func (r *categoryRepo) Get(ctx context.Context, id string) (*category.ExpenseCategory, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).
		Scopes(live("expense_categories")).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, translateError(err, msgCategoryNotFound)
	}
	c := toCategory(&row)
	return &c, nil
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&categoryRow{}).
		Scopes(live("expense_categories")).
		Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, translateError(err, msgCategoryNotFound)
	}
	return n > 0, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *category.ExpenseCategory) error {
	row := categoryRow{ID: c.ID, Name: c.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError(err, msgCategoryNotFound)
	}
	*c = toCategory(&row)
	return nil
}

func (r *categoryRepo) Update(ctx context.Context, c *category.ExpenseCategory) error {
	res := r.db.WithContext(ctx).
		Model(&categoryRow{}).
		Scopes(live("expense_categories")).
		Where("id = ?", c.ID).
		Updates(map[string]any{"name": c.Name, "updated_at": r.now()})
	if res.Error != nil {
		return translateError(res.Error, msgCategoryNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgCategoryNotFound)
	}
	return nil
}

func (r *categoryRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&categoryRow{}).
		Scopes(live("expense_categories")).
		Where("id = ?", id).
		Updates(softDelete(r.now()))
	if res.Error != nil {
		return translateError(res.Error, msgCategoryNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgCategoryNotFound)
	}
	return nil
}
