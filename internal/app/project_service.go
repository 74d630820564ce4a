package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/app/fanout"
	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Create, update and delete
// write the project row, its assignments and its allocations in one
// transaction so a failure in any step leaves no partial state behind.
type ProjectService struct {
	deps        Deps
	listWorkers int
	logger      *slog.Logger
	now         func() time.Time
}

// NewProjectService creates a ProjectService. listWorkers bounds the number
// of concurrent per-project lookups made by ListProjects.
func NewProjectService(deps Deps, listWorkers int) *ProjectService {
	return &ProjectService{
		deps:        deps,
		listWorkers: max(1, listWorkers),
		logger:      deps.logger(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListProjects returns all live projects, each with its assignments and
// milestone totals.
func (s *ProjectService) ListProjects(ctx context.Context) ([]ports.ProjectSummary, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.deps.Repos.Projects.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	summaries, err := fanout.Collect(ctx, s.listWorkers, projects, s.summarize)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to summarize projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return summaries, nil
}

func (s *ProjectService) summarize(ctx context.Context, p project.Project) (ports.ProjectSummary, error) {
	assignments, err := s.deps.Repos.Assignments.ListByProject(ctx, p.ID)
	if err != nil {
		return ports.ProjectSummary{}, fmt.Errorf("listing assignments of %s: %w", p.ID, err)
	}
	milestones, err := s.deps.Repos.Milestones.ListByProject(ctx, p.ID)
	if err != nil {
		return ports.ProjectSummary{}, fmt.Errorf("listing milestones of %s: %w", p.ID, err)
	}
	return ports.ProjectSummary{
		Project:     p,
		Assignments: assignments,
		Milestones:  milestone.Summarize(milestones),
	}, nil
}

// GetProject returns a project with its assignments, allocations and
// milestones.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ports.ProjectDetail, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id))

	p, err := s.deps.Repos.Projects.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetProject", id, err)
		return nil, err
	}

	agg, err := loadAggregate(ctx, s.deps.Repos, p)
	if err != nil {
		s.logFailure(ctx, "GetProject", id, err)
		return nil, err
	}

	milestones, err := s.deps.Repos.Milestones.ListByProject(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetProject", id, err)
		return nil, err
	}

	return &ports.ProjectDetail{Aggregate: *agg, Milestones: milestones}, nil
}

// CreateProject validates the draft and writes the project, its
// assignments and its allocations in one transaction.
func (s *ProjectService) CreateProject(ctx context.Context, draft *project.Draft) (*project.Aggregate, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("name", draft.Name))

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var out *project.Aggregate
	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		names, err := categoryNames(ctx, tx, draft.CostAllocations)
		if err != nil {
			return err
		}

		p := draft.Project()
		if err := tx.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("inserting project: %w", err)
		}

		assignments, err := tx.Assignments.CreateBatch(ctx, project.Assignments(p.ID, draft.EmployeeIDs, s.now()))
		if err != nil {
			return fmt.Errorf("inserting assignments: %w", err)
		}

		allocations, err := tx.Allocations.CreateBatch(ctx, project.Allocations(p.ID, draft.CostAllocations))
		if err != nil {
			return fmt.Errorf("inserting cost allocations: %w", err)
		}
		for i := range allocations {
			allocations[i].CategoryName = names[allocations[i].CategoryID]
		}

		out = &project.Aggregate{Project: *p, Assignments: assignments, Allocations: allocations}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.deps.projectWrite(ctx, "create")
	return out, nil
}

// UpdateProject merges the patch into the stored project. Assignment and
// allocation sets present in the patch replace the stored ones.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch *project.Patch) (*project.Aggregate, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var out *project.Aggregate
	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		p.Apply(patch)
		if err := p.Validate(); err != nil {
			return err
		}
		if err := tx.Projects.Update(ctx, p); err != nil {
			return fmt.Errorf("updating project: %w", err)
		}

		if patch.EmployeeIDs != nil {
			if err := tx.Assignments.SoftDeleteByProject(ctx, id); err != nil {
				return fmt.Errorf("removing assignments: %w", err)
			}
			if _, err := tx.Assignments.CreateBatch(ctx, project.Assignments(id, *patch.EmployeeIDs, s.now())); err != nil {
				return fmt.Errorf("inserting assignments: %w", err)
			}
		}

		if patch.CostAllocations != nil {
			if _, err := categoryNames(ctx, tx, *patch.CostAllocations); err != nil {
				return err
			}
			if err := tx.Allocations.SoftDeleteByProject(ctx, id); err != nil {
				return fmt.Errorf("removing cost allocations: %w", err)
			}
			if _, err := tx.Allocations.CreateBatch(ctx, project.Allocations(id, *patch.CostAllocations)); err != nil {
				return fmt.Errorf("inserting cost allocations: %w", err)
			}
		}

		out, err = loadAggregate(ctx, tx, p)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "UpdateProject", id, err)
		return nil, err
	}

	s.deps.projectWrite(ctx, "update")
	return out, nil
}

// DeleteProject soft-deletes the project together with its assignments,
// allocations and milestones.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id))

	err := s.deps.Tx.WithinTx(ctx, func(tx ports.Repositories) error {
		if err := tx.Projects.SoftDelete(ctx, id); err != nil {
			return err
		}
		if err := tx.Assignments.SoftDeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("removing assignments: %w", err)
		}
		if err := tx.Allocations.SoftDeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("removing cost allocations: %w", err)
		}
		if err := tx.Milestones.SoftDeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("removing milestones: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "DeleteProject", id, err)
		return err
	}

	s.deps.projectWrite(ctx, "delete")
	return nil
}

// UpdateProjectStatus sets the lifecycle status of a project.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id string, status project.Status) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project status",
		slog.String("id", id),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("must be one of %s, %s, %s", project.StatusActive, project.StatusInactive, project.StatusCompleted),
		}}
	}

	p, err := s.deps.Repos.Projects.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "UpdateProjectStatus", id, err)
		return nil, err
	}

	p.Status = status
	if err := s.deps.Repos.Projects.Update(ctx, p); err != nil {
		s.logFailure(ctx, "UpdateProjectStatus", id, err)
		return nil, err
	}

	s.deps.projectWrite(ctx, "status")
	return p, nil
}

func (s *ProjectService) logFailure(ctx context.Context, op, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "project operation failed",
		slog.String("operation", op),
		slog.String("id", id),
		slog.Any("error", err),
	)
}

// loadAggregate reads the live assignments and allocations of p through
// repos, which may be bound to a transaction.
func loadAggregate(ctx context.Context, repos ports.Repositories, p *project.Project) (*project.Aggregate, error) {
	assignments, err := repos.Assignments.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	allocations, err := repos.Allocations.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("listing cost allocations: %w", err)
	}
	return &project.Aggregate{Project: *p, Assignments: assignments, Allocations: allocations}, nil
}

// categoryNames resolves every referenced category, failing with a
// validation error when one is missing or deleted.
func categoryNames(ctx context.Context, repos ports.Repositories, in []project.AllocationInput) (map[string]string, error) {
	names := make(map[string]string, len(in))
	for _, a := range in {
		if _, ok := names[a.CategoryID]; ok {
			continue
		}
		c, err := repos.Categories.Get(ctx, a.CategoryID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalidf("Expense category %s does not exist", a.CategoryID)
		}
		if err != nil {
			return nil, fmt.Errorf("looking up expense category: %w", err)
		}
		names[a.CategoryID] = c.Name
	}
	return names, nil
}
