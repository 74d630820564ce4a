// Package milestone holds project milestones and the rule that keeps a
// project's milestone percentages within 100.
package milestone

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// MaxTotalPercentage is the ceiling for the sum of a project's milestones.
const MaxTotalPercentage = 100

// Milestone is a weighted checkpoint of a project. A nil AchievedDate means
// the milestone has not been reached yet.
type Milestone struct {
	ID           string
	ProjectID    string
	ProjectName  string
	Name         string
	Percentage   int
	Description  string
	TargetDate   time.Time
	AchievedDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Achieved reports whether the milestone has an achieved date.
func (m *Milestone) Achieved() bool {
	return m.AchievedDate != nil
}

// Validate checks business rules for the Milestone entity.
func (m *Milestone) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.ProjectID) == "" {
		fields["projectId"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if m.Percentage < 0 || m.Percentage > MaxTotalPercentage {
		fields["percentage"] = fmt.Sprintf("must be between 0 and %d, got %d", MaxTotalPercentage, m.Percentage)
	}
	if m.TargetDate.IsZero() {
		fields["targetDate"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft is the input for creating a milestone.
type Draft struct {
	ProjectID    string
	Name         string
	Percentage   int
	Description  string
	TargetDate   time.Time
	AchievedDate *time.Time
}

// Milestone builds the milestone described by the draft.
func (d *Draft) Milestone() *Milestone {
	return &Milestone{
		ProjectID:    d.ProjectID,
		Name:         d.Name,
		Percentage:   d.Percentage,
		Description:  d.Description,
		TargetDate:   d.TargetDate,
		AchievedDate: d.AchievedDate,
	}
}

// Patch is a partial milestone update. AchievedDate is tri-state: unset
// keeps the stored date, Null clears it.
type Patch struct {
	ProjectID    *string
	Name         *string
	Percentage   *int
	Description  *string
	TargetDate   *time.Time
	AchievedDate domain.Nullable[time.Time]
}

// Validate checks the fields present in the patch.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.ProjectID != nil && strings.TrimSpace(*p.ProjectID) == "" {
		fields["projectId"] = "must not be empty"
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if p.Percentage != nil && (*p.Percentage < 0 || *p.Percentage > MaxTotalPercentage) {
		fields["percentage"] = fmt.Sprintf("must be between 0 and %d, got %d", MaxTotalPercentage, *p.Percentage)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges a patch into the milestone.
func (m *Milestone) Apply(p *Patch) {
	if p.ProjectID != nil {
		m.ProjectID = *p.ProjectID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Percentage != nil {
		m.Percentage = *p.Percentage
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.TargetDate != nil {
		m.TargetDate = *p.TargetDate
	}
	m.AchievedDate = p.AchievedDate.ApplyTo(m.AchievedDate)
}
