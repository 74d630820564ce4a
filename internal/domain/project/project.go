// Package project holds the project aggregate: the project row itself, its
// employee assignments and its cost allocations, together with the input
// types used to create and patch it.
package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// DefaultRole is assigned to employees added through project create/update.
const DefaultRole = "MEMBER"

// Project is a client engagement with a budget, staffed by employees and
// funded through cost allocations.
type Project struct {
	ID          string
	Name        string
	ClientName  *string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Budget      decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assignment records that an employee works on a project.
type Assignment struct {
	ID         string
	ProjectID  string
	EmployeeID string
	Role       string
	AssignedAt time.Time
}

// CostAllocation is a budget line of a project, booked against an expense
// category. CategoryName is populated on reads only.
type CostAllocation struct {
	ID              string
	ProjectID       string
	CategoryID      string
	CategoryName    string
	AllocatedAmount decimal.Decimal
	Description     string
}

// Aggregate is a project together with its live assignments and allocations.
type Aggregate struct {
	Project     Project
	Assignments []Assignment
	Allocations []CostAllocation
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if p.StartDate.IsZero() {
		fields["startDate"] = domain.MsgRequired
	}
	if p.EndDate.IsZero() {
		fields["endDate"] = domain.MsgRequired
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		fields["endDate"] = "must not be before startDate"
	}
	if p.Budget.IsNegative() {
		fields["budget"] = fmt.Sprintf("must not be negative, got %s", p.Budget)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges a patch into the project. Fields absent from the patch keep
// their current value.
func (p *Project) Apply(patch *Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	p.ClientName = patch.ClientName.ApplyTo(p.ClientName)
	p.Description = patch.Description.ApplyTo(p.Description)
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
