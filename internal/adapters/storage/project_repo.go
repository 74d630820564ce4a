package storage

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

var (
	_ ports.ProjectRepository    = (*projectRepo)(nil)
	_ ports.AssignmentRepository = (*assignmentRepo)(nil)
	_ ports.AllocationRepository = (*allocationRepo)(nil)
)

type projectRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func (r *projectRepo) List(ctx context.Context) ([]project.Project, error) {
	var rows []projectRow
	err := r.db.WithContext(ctx).
		Scopes(live("projects")).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}

	out := make([]project.Project, len(rows))
	for i := range rows {
		out[i] = toProject(&rows[i])
	}
	return out, nil
}

func (r *projectRepo) Get(ctx context.Context, id string) (*project.Project, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *projectRepo) GetForUpdate(ctx context.Context, id string) (*project.Project, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *projectRepo) get(db *gorm.DB, id string) (*project.Project, error) {
	var row projectRow
	if err := db.Scopes(live("projects")).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}
	p := toProject(&row)
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *project.Project) error {
	row := toProjectRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError(err, msgProjectNotFound)
	}
	*p = toProject(&row)
	return nil
}

func (r *projectRepo) Update(ctx context.Context, p *project.Project) error {
	row := toProjectRow(p)
	res := r.db.WithContext(ctx).
		Model(&row).
		Scopes(live("projects")).
		Select("*").
		Omit("id", "created_at", "is_deleted", "deleted_at").
		Updates(&row)
	if res.Error != nil {
		return translateError(res.Error, msgProjectNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgProjectNotFound)
	}
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *projectRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&projectRow{}).
		Scopes(live("projects")).
		Where("id = ?", id).
		Updates(softDelete(r.now()))
	if res.Error != nil {
		return translateError(res.Error, msgProjectNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgProjectNotFound)
	}
	return nil
}

type assignmentRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func (r *assignmentRepo) ListByProject(ctx context.Context, projectID string) ([]project.Assignment, error) {
	var rows []assignmentRow
	err := r.db.WithContext(ctx).
		Scopes(live("project_assignments")).
		Where("project_id = ?", projectID).
		Order("assigned_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}

	out := make([]project.Assignment, len(rows))
	for i := range rows {
		out[i] = toAssignment(&rows[i])
	}
	return out, nil
}

func (r *assignmentRepo) CreateBatch(ctx context.Context, as []project.Assignment) ([]project.Assignment, error) {
	if len(as) == 0 {
		return []project.Assignment{}, nil
	}

	rows := make([]assignmentRow, len(as))
	for i, a := range as {
		rows[i] = assignmentRow{
			ID:         a.ID,
			ProjectID:  a.ProjectID,
			EmployeeID: a.EmployeeID,
			Role:       a.Role,
			AssignedAt: a.AssignedAt,
		}
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}

	out := make([]project.Assignment, len(rows))
	for i := range rows {
		out[i] = toAssignment(&rows[i])
	}
	return out, nil
}

func (r *assignmentRepo) SoftDeleteByProject(ctx context.Context, projectID string) error {
	err := r.db.WithContext(ctx).
		Model(&assignmentRow{}).
		Scopes(live("project_assignments")).
		Where("project_id = ?", projectID).
		Updates(softDelete(r.now())).Error
	return translateError(err, msgProjectNotFound)
}

type allocationRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func (r *allocationRepo) ListByProject(ctx context.Context, projectID string) ([]project.CostAllocation, error) {
	var rows []allocationRow
	err := r.db.WithContext(ctx).
		Joins("Category").
		Scopes(live("cost_allocations")).
		Where("cost_allocations.project_id = ?", projectID).
		Order("cost_allocations.id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}

	out := make([]project.CostAllocation, len(rows))
	for i := range rows {
		out[i] = toAllocation(&rows[i])
	}
	return out, nil
}

func (r *allocationRepo) CreateBatch(ctx context.Context, as []project.CostAllocation) ([]project.CostAllocation, error) {
	if len(as) == 0 {
		return []project.CostAllocation{}, nil
	}

	rows := make([]allocationRow, len(as))
	for i, a := range as {
		rows[i] = allocationRow{
			ID:              a.ID,
			ProjectID:       a.ProjectID,
			CategoryID:      a.CategoryID,
			AllocatedAmount: a.AllocatedAmount,
			Description:     a.Description,
		}
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, translateError(err, msgProjectNotFound)
	}

	out := make([]project.CostAllocation, len(rows))
	for i := range rows {
		out[i] = toAllocation(&rows[i])
		out[i].CategoryName = as[i].CategoryName
	}
	return out, nil
}

func (r *allocationRepo) SoftDeleteByProject(ctx context.Context, projectID string) error {
	err := r.db.WithContext(ctx).
		Model(&allocationRow{}).
		Scopes(live("cost_allocations")).
		Where("project_id = ?", projectID).
		Updates(softDelete(r.now())).Error
	return translateError(err, msgProjectNotFound)
}
