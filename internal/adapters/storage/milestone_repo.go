package storage

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

var _ ports.MilestoneRepository = (*milestoneRepo)(nil)

type milestoneRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// withProject loads live milestones together with their project name.
func (r *milestoneRepo) withProject(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("Project").
		Scopes(live("milestones")).
		Order("milestones.created_at, milestones.id")
}

func (r *milestoneRepo) List(ctx context.Context) ([]milestone.Milestone, error) {
	var rows []milestoneRow
	if err := r.withProject(ctx).Find(&rows).Error; err != nil {
		return nil, translateError(err, msgMilestoneNotFound)
	}
	return toMilestones(rows), nil
}

func (r *milestoneRepo) Get(ctx context.Context, id string) (*milestone.Milestone, error) {
	var row milestoneRow
	if err := r.withProject(ctx).Where("milestones.id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err, msgMilestoneNotFound)
	}
	m := toMilestone(&row)
	return &m, nil
}

func (r *milestoneRepo) ListByProject(ctx context.Context, projectID string) ([]milestone.Milestone, error) {
	var rows []milestoneRow
	if err := r.withProject(ctx).Where("milestones.project_id = ?", projectID).Find(&rows).Error; err != nil {
		return nil, translateError(err, msgMilestoneNotFound)
	}
	return toMilestones(rows), nil
}

func (r *milestoneRepo) ListByProjectForUpdate(ctx context.Context, projectID string) ([]milestone.Milestone, error) {
	var rows []milestoneRow
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(live("milestones")).
		Where("project_id = ?", projectID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, msgMilestoneNotFound)
	}
	return toMilestones(rows), nil
}

func (r *milestoneRepo) Create(ctx context.Context, m *milestone.Milestone) error {
	row := toMilestoneRow(m)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError(err, msgMilestoneNotFound)
	}
	m.ID = row.ID
	m.CreatedAt = row.CreatedAt
	m.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *milestoneRepo) Update(ctx context.Context, m *milestone.Milestone) error {
	row := toMilestoneRow(m)
	res := r.db.WithContext(ctx).
		Model(&row).
		Scopes(live("milestones")).
		Select("*").
		Omit("id", "created_at", "is_deleted", "deleted_at", clause.Associations).
		Updates(&row)
	if res.Error != nil {
		return translateError(res.Error, msgMilestoneNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgMilestoneNotFound)
	}
	m.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *milestoneRepo) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&milestoneRow{}).
		Scopes(live("milestones")).
		Where("id = ?", id).
		Updates(softDelete(r.now()))
	if res.Error != nil {
		return translateError(res.Error, msgMilestoneNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf(msgMilestoneNotFound)
	}
	return nil
}

func (r *milestoneRepo) SoftDeleteByProject(ctx context.Context, projectID string) error {
	err := r.db.WithContext(ctx).
		Model(&milestoneRow{}).
		Scopes(live("milestones")).
		Where("project_id = ?", projectID).
		Updates(softDelete(r.now())).Error
	return translateError(err, msgMilestoneNotFound)
}

func toMilestones(rows []milestoneRow) []milestone.Milestone {
	out := make([]milestone.Milestone, len(rows))
	for i := range rows {
		out[i] = toMilestone(&rows[i])
	}
	return out
}
