package project

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// Messages returned when a project is submitted without staffing or funding.
const (
	MsgNoEmployees   = "At least one employee must be assigned"
	MsgNoAllocations = "At least one cost allocation must be assigned"
)

// AllocationInput is a requested cost allocation line.
type AllocationInput struct {
	CategoryID      string
	AllocatedAmount decimal.Decimal
	Description     string
}

// Draft is the input for creating a project together with its assignments
// and cost allocations.
type Draft struct {
	Name            string
	ClientName      *string
	Description     *string
	StartDate       time.Time
	EndDate         time.Time
	Budget          decimal.Decimal
	Status          Status
	EmployeeIDs     []string
	CostAllocations []AllocationInput
}

// Validate rejects drafts without employees or allocations first, then
// checks the project fields and each allocation line.
func (d *Draft) Validate() error {
	if len(d.EmployeeIDs) == 0 {
		return domain.Invalidf(MsgNoEmployees)
	}
	if len(d.CostAllocations) == 0 {
		return domain.Invalidf(MsgNoAllocations)
	}

	p := d.Project()
	err := p.Validate()

	fields := make(map[string]string)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields = verr.Fields
	}
	validateEmployeeIDs(d.EmployeeIDs, fields)
	validateAllocations(d.CostAllocations, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Project builds the project row described by the draft. Status defaults to
// StatusActive when unset.
func (d *Draft) Project() *Project {
	status := d.Status
	if status == "" {
		status = StatusActive
	}
	return &Project{
		Name:        d.Name,
		ClientName:  d.ClientName,
		Description: d.Description,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Budget:      d.Budget,
		Status:      status,
	}
}

// Patch is a partial project update. Nil pointers and unset Nullables leave
// the stored value untouched. A non-nil EmployeeIDs or CostAllocations
// replaces the full set, even when it points to an empty slice.
type Patch struct {
	Name            *string
	ClientName      domain.Nullable[string]
	Description     domain.Nullable[string]
	StartDate       *time.Time
	EndDate         *time.Time
	Budget          *decimal.Decimal
	Status          *Status
	EmployeeIDs     *[]string
	CostAllocations *[]AllocationInput
}

// Validate checks the fields present in the patch.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
	}
	if p.Budget != nil && p.Budget.IsNegative() {
		fields["budget"] = fmt.Sprintf("must not be negative, got %s", *p.Budget)
	}
	if p.EmployeeIDs != nil {
		validateEmployeeIDs(*p.EmployeeIDs, fields)
	}
	if p.CostAllocations != nil {
		validateAllocations(*p.CostAllocations, fields)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Assignments builds one assignment per employee id.
func Assignments(projectID string, employeeIDs []string, at time.Time) []Assignment {
	out := make([]Assignment, len(employeeIDs))
	for i, id := range employeeIDs {
		out[i] = Assignment{
			ProjectID:  projectID,
			EmployeeID: id,
			Role:       DefaultRole,
			AssignedAt: at,
		}
	}
	return out
}

// Allocations builds one cost allocation per input line.
func Allocations(projectID string, in []AllocationInput) []CostAllocation {
	out := make([]CostAllocation, len(in))
	for i, a := range in {
		out[i] = CostAllocation{
			ProjectID:       projectID,
			CategoryID:      a.CategoryID,
			AllocatedAmount: a.AllocatedAmount,
			Description:     a.Description,
		}
	}
	return out
}

func validateEmployeeIDs(ids []string, fields map[string]string) {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		key := fmt.Sprintf("employeeIds[%d]", i)
		if strings.TrimSpace(id) == "" {
			fields[key] = domain.MsgRequired
			continue
		}
		if _, dup := seen[id]; dup {
			fields[key] = fmt.Sprintf("duplicate employee %q", id)
			continue
		}
		seen[id] = struct{}{}
	}
}

func validateAllocations(in []AllocationInput, fields map[string]string) {
	for i, a := range in {
		if strings.TrimSpace(a.CategoryID) == "" {
			fields[fmt.Sprintf("costAllocations[%d].categoryId", i)] = domain.MsgRequired
		}
		if a.AllocatedAmount.IsNegative() {
			fields[fmt.Sprintf("costAllocations[%d].allocatedAmount", i)] =
				fmt.Sprintf("must not be negative, got %s", a.AllocatedAmount)
		}
	}
}
