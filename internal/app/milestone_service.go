package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Messages returned by milestone lookups and writes.
const (
	MsgDuplicateMilestone = "Milestone with this name already exists in the project"
	MsgProjectMissing     = "Project does not exist"
	MsgNoMilestones       = "No milestones found for this project"
)

// Compile-time check that MilestoneService implements ports.MilestoneService.
var _ ports.MilestoneService = (*MilestoneService)(nil)

// MilestoneService implements ports.MilestoneService.
//
// Create and update lock the owning project row, then read its milestones
// with a locking read. The sum and the name check therefore always see the
// latest committed siblings, even under REPEATABLE READ where a plain read
// would return the snapshot taken at the first read of the transaction.
type MilestoneService struct {
	deps   Deps
	logger *slog.Logger
}

// NewMilestoneService creates a MilestoneService.
func NewMilestoneService(deps Deps) *MilestoneService {
	return &MilestoneService{deps: deps, logger: deps.logger()}
}

// ListMilestones returns every live milestone with its project name.
func (s *MilestoneService) ListMilestones(ctx context.Context) ([]milestone.Milestone, error) {
	s.logger.InfoContext(ctx, "listing milestones")

	ms, err := s.deps.Repos.Milestones.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list milestones",
			slog.String("operation", "ListMilestones"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return ms, nil
}

// GetMilestone returns a single live milestone.
func (s *MilestoneService) GetMilestone(ctx context.Context, id string) (*milestone.Milestone, error) {
	s.logger.InfoContext(ctx, "fetching milestone", slog.String("id", id))

	m, err := s.deps.Repos.Milestones.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetMilestone", id, err)
		return nil, err
	}
	return m, nil
}

// ListProjectMilestones returns the milestones of one project. A project
// without milestones is reported as not found.
func (s *MilestoneService) ListProjectMilestones(ctx context.Context, projectID string) ([]milestone.Milestone, error) {
	s.logger.InfoContext(ctx, "listing project milestones", slog.String("project_id", projectID))

	if _, err := s.deps.Repos.Projects.Get(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.NotFoundf(MsgProjectMissing)
		}
		s.logFailure(ctx, "ListProjectMilestones", projectID, err)
		return nil, err
	}

	ms, err := s.deps.Repos.Milestones.ListByProject(ctx, projectID)
	if err != nil {
		s.logFailure(ctx, "ListProjectMilestones", projectID, err)
		return nil, err
	}
	if len(ms) == 0 {
		return nil, domain.NotFoundf(MsgNoMilestones)
	}
	return ms, nil
}

// CreateMilestone inserts a milestone after checking name uniqueness and the
// project's remaining percentage.
func (s *MilestoneService) CreateMilestone(ctx context.Context, draft *milestone.Draft) (*milestone.Milestone, error) {
	s.logger.InfoContext(ctx, "creating milestone",
		slog.String("project_id", draft.ProjectID),
		slog.String("name", draft.Name),
	)

	m := draft.Milestone()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects.GetForUpdate(ctx, m.ProjectID)
		if err != nil {
			return err
		}

		siblings, err := tx.Milestones.ListByProjectForUpdate(ctx, m.ProjectID)
		if err != nil {
			return fmt.Errorf("listing project milestones: %w", err)
		}
		if milestone.NameTaken(siblings, m.Name, "") {
			return domain.Invalidf(MsgDuplicateMilestone)
		}
		if err := s.checkAllocation(ctx, "CreateMilestone", siblings, m.Percentage, ""); err != nil {
			return err
		}

		if err := tx.Milestones.Create(ctx, m); err != nil {
			return fmt.Errorf("inserting milestone: %w", err)
		}
		m.ProjectName = p.Name
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "CreateMilestone", m.ProjectID, err)
		return nil, err
	}

	return m, nil
}

// UpdateMilestone applies the patch. The milestone's own percentage is left
// out of the sum; when the patch moves it to another project the checks run
// against that project.
func (s *MilestoneService) UpdateMilestone(ctx context.Context, id string, patch *milestone.Patch) (*milestone.Milestone, error) {
	s.logger.InfoContext(ctx, "updating milestone", slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var out *milestone.Milestone
	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		existing, err := tx.Milestones.Get(ctx, id)
		if err != nil {
			return err
		}

		m := *existing
		m.Apply(patch)
		if err := m.Validate(); err != nil {
			return err
		}

		p, err := tx.Projects.GetForUpdate(ctx, m.ProjectID)
		if err != nil {
			return err
		}

		siblings, err := tx.Milestones.ListByProjectForUpdate(ctx, m.ProjectID)
		if err != nil {
			return fmt.Errorf("listing project milestones: %w", err)
		}
		renamed := m.Name != existing.Name || m.ProjectID != existing.ProjectID
		if renamed && milestone.NameTaken(siblings, m.Name, id) {
			return domain.Invalidf(MsgDuplicateMilestone)
		}
		if err := s.checkAllocation(ctx, "UpdateMilestone", siblings, m.Percentage, id); err != nil {
			return err
		}

		if err := tx.Milestones.Update(ctx, &m); err != nil {
			return fmt.Errorf("updating milestone: %w", err)
		}
		m.ProjectName = p.Name
		out = &m
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "UpdateMilestone", id, err)
		return nil, err
	}

	return out, nil
}

// DeleteMilestone soft-deletes a milestone.
func (s *MilestoneService) DeleteMilestone(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting milestone", slog.String("id", id))

	if err := s.deps.Repos.Milestones.SoftDelete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteMilestone", id, err)
		return err
	}
	return nil
}

// Progress returns, for every live project, the achieved percentage and
// what is left of 100.
func (s *MilestoneService) Progress(ctx context.Context) ([]milestone.Progress, error) {
	s.logger.InfoContext(ctx, "computing milestone progress")

	projects, err := s.deps.Repos.Projects.List(ctx)
	if err != nil {
		s.logFailure(ctx, "Progress", "", err)
		return nil, err
	}
	ms, err := s.deps.Repos.Milestones.List(ctx)
	if err != nil {
		s.logFailure(ctx, "Progress", "", err)
		return nil, err
	}

	byProject := make(map[string][]milestone.Milestone, len(projects))
	for _, m := range ms {
		byProject[m.ProjectID] = append(byProject[m.ProjectID], m)
	}

	out := make([]milestone.Progress, len(projects))
	for i, p := range projects {
		totals := milestone.Summarize(byProject[p.ID])
		out[i] = milestone.Progress{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Achieved:    totals.Achieved,
			Remaining:   totals.Remaining,
		}
	}
	return out, nil
}

func (s *MilestoneService) checkAllocation(
	ctx context.Context, op string, siblings []milestone.Milestone, candidate int, excludeID string,
) error {
	if err := milestone.CheckAllocation(siblings, candidate, excludeID); err != nil {
		s.deps.allocationRejected(ctx, op)
		return err
	}
	return nil
}

func (s *MilestoneService) logFailure(ctx context.Context, op, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "milestone operation failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
}
