package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
)

// CostAllocationRequest is one cost allocation line in a project request.
type CostAllocationRequest struct {
	CategoryID      string           `json:"categoryId"`
	AllocatedAmount *decimal.Decimal `json:"allocatedAmount"`
	Description     string           `json:"description,omitempty"`
}

// CreateProjectRequest represents the JSON body for creating a project
// together with its assignments and cost allocations.
type CreateProjectRequest struct {
	Name            string                  `json:"name"`
	ClientName      *string                 `json:"clientName,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	StartDate       *Date                   `json:"startDate"`
	EndDate         *Date                   `json:"endDate"`
	Budget          *decimal.Decimal        `json:"budget"`
	Status          string                  `json:"status,omitempty"`
	EmployeeIDs     []string                `json:"employeeIds"`
	CostAllocations []CostAllocationRequest `json:"costAllocations"`
}

// Validate checks that required fields are present. Empty employee and
// allocation lists are reported with their own message before any field
// errors. Returns a *domain.ValidationError for field failures.
func (r *CreateProjectRequest) Validate() error {
	if len(r.EmployeeIDs) == 0 {
		return domain.Invalidf(project.MsgNoEmployees)
	}
	if len(r.CostAllocations) == 0 {
		return domain.Invalidf(project.MsgNoAllocations)
	}

	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.StartDate == nil {
		fields["startDate"] = msgRequired
	}
	if r.EndDate == nil {
		fields["endDate"] = msgRequired
	}
	if r.Budget == nil {
		fields["budget"] = "Budget must be a valid number"
	}
	if r.Status != "" && !project.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	validateAllocationRequests(r.CostAllocations, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft converts the request into a project draft. Call Validate first.
func (r *CreateProjectRequest) Draft() *project.Draft {
	return &project.Draft{
		Name:            strings.TrimSpace(r.Name),
		ClientName:      r.ClientName,
		Description:     r.Description,
		StartDate:       r.StartDate.Time,
		EndDate:         r.EndDate.Time,
		Budget:          *r.Budget,
		Status:          project.Status(r.Status),
		EmployeeIDs:     r.EmployeeIDs,
		CostAllocations: allocationInputs(r.CostAllocations),
	}
}

// UpdateProjectRequest represents the JSON body for updating a project.
// Absent fields are left unchanged. clientName and description may be set
// to null to clear them. A present employeeIds or costAllocations list
// replaces the stored set.
type UpdateProjectRequest struct {
	Name            *string                  `json:"name,omitempty"`
	ClientName      Nullable[string]         `json:"clientName,omitzero"`
	Description     Nullable[string]         `json:"description,omitzero"`
	StartDate       *Date                    `json:"startDate,omitempty"`
	EndDate         *Date                    `json:"endDate,omitempty"`
	Budget          *decimal.Decimal         `json:"budget,omitempty"`
	Status          *string                  `json:"status,omitempty"`
	EmployeeIDs     *[]string                `json:"employeeIds,omitempty"`
	CostAllocations *[]CostAllocationRequest `json:"costAllocations,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Status != nil && !project.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	if r.CostAllocations != nil {
		validateAllocationRequests(*r.CostAllocations, fields)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts the request into a project patch. Call Validate first.
func (r *UpdateProjectRequest) Patch() *project.Patch {
	p := &project.Patch{
		Name:        r.Name,
		ClientName:  domainNullable(r.ClientName, identity[string]),
		Description: domainNullable(r.Description, identity[string]),
		Budget:      r.Budget,
		EmployeeIDs: r.EmployeeIDs,
	}
	if r.StartDate != nil {
		p.StartDate = &r.StartDate.Time
	}
	if r.EndDate != nil {
		p.EndDate = &r.EndDate.Time
	}
	if r.Status != nil {
		s := project.Status(*r.Status)
		p.Status = &s
	}
	if r.CostAllocations != nil {
		in := allocationInputs(*r.CostAllocations)
		p.CostAllocations = &in
	}
	return p
}

// UpdateStatusRequest represents the JSON body for changing a project's
// status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the status is present. Its value is checked by the
// service.
func (r *UpdateStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return &domain.ValidationError{Fields: map[string]string{"status": msgRequired}}
	}
	return nil
}

// CreateMilestoneRequest represents the JSON body for creating a milestone.
type CreateMilestoneRequest struct {
	ProjectID    string `json:"projectId"`
	Name         string `json:"name"`
	Percentage   *int   `json:"percentage"`
	Description  string `json:"description,omitempty"`
	TargetDate   *Date  `json:"targetDate"`
	AchievedDate *Date  `json:"achievedDate,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateMilestoneRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ProjectID) == "" {
		fields["projectId"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Percentage == nil {
		fields["percentage"] = msgRequired
	}
	if r.TargetDate == nil {
		fields["targetDate"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft converts the request into a milestone draft. Call Validate first.
func (r *CreateMilestoneRequest) Draft() *milestone.Draft {
	d := &milestone.Draft{
		ProjectID:   r.ProjectID,
		Name:        strings.TrimSpace(r.Name),
		Percentage:  *r.Percentage,
		Description: r.Description,
		TargetDate:  r.TargetDate.Time,
	}
	if r.AchievedDate != nil {
		t := r.AchievedDate.Time
		d.AchievedDate = &t
	}
	return d
}

// UpdateMilestoneRequest represents the JSON body for updating a milestone.
// achievedDate set to null marks the milestone as not achieved.
type UpdateMilestoneRequest struct {
	ProjectID    *string        `json:"projectId,omitempty"`
	Name         *string        `json:"name,omitempty"`
	Percentage   *int           `json:"percentage,omitempty"`
	Description  *string        `json:"description,omitempty"`
	TargetDate   *Date          `json:"targetDate,omitempty"`
	AchievedDate Nullable[Date] `json:"achievedDate,omitzero"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateMilestoneRequest) Validate() error {
	fields := make(map[string]string)

	if r.ProjectID != nil && strings.TrimSpace(*r.ProjectID) == "" {
		fields["projectId"] = msgMustNotEmpty
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts the request into a milestone patch.
func (r *UpdateMilestoneRequest) Patch() *milestone.Patch {
	p := &milestone.Patch{
		ProjectID:    r.ProjectID,
		Percentage:   r.Percentage,
		Description:  r.Description,
		AchievedDate: domainNullable(r.AchievedDate, dateTime),
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		p.Name = &name
	}
	if r.TargetDate != nil {
		t := r.TargetDate.Time
		p.TargetDate = &t
	}
	return p
}

// CategoryRequest represents the JSON body for creating or renaming an
// expense category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is present.
func (r *CategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Invalidf(category.MsgNameRequired)
	}
	return nil
}

// CreateExpenseRequest represents the JSON body for reporting an expense.
// expenseCatId may be "other" for an expense that fits no category.
type CreateExpenseRequest struct {
	DepartmentID string           `json:"departmentId"`
	EmployeeID   string           `json:"employeeId"`
	CategoryID   *string          `json:"expenseCatId,omitempty"`
	ProjectID    *string          `json:"projectId,omitempty"`
	ProductID    *string          `json:"productId,omitempty"`
	ProductName  *string          `json:"productName,omitempty"`
	Amount       *decimal.Decimal `json:"amount"`
	Quantity     *int             `json:"quantity"`
	Total        *decimal.Decimal `json:"total"`
	Date         *Date            `json:"date"`
	Notes        *string          `json:"notes,omitempty"`
	ReceiptURL   *string          `json:"receiptUrl,omitempty"`
	Status       string           `json:"status,omitempty"`
}

// Validate checks that required fields are present. Value rules are
// checked by the domain.
func (r *CreateExpenseRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.DepartmentID) == "" {
		fields["departmentId"] = msgRequired
	}
	if strings.TrimSpace(r.EmployeeID) == "" {
		fields["employeeId"] = msgRequired
	}
	if r.Amount == nil {
		fields["amount"] = "amount must be a valid number"
	}
	if r.Quantity == nil {
		fields["quantity"] = msgRequired
	}
	if r.Total == nil {
		fields["total"] = "total must be a valid number"
	}
	if r.Date == nil {
		fields["date"] = msgRequired
	}
	if r.Status != "" && !expense.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft converts the request into an expense draft. Call Validate first.
func (r *CreateExpenseRequest) Draft() *expense.Draft {
	return &expense.Draft{
		DepartmentID: strings.TrimSpace(r.DepartmentID),
		EmployeeID:   strings.TrimSpace(r.EmployeeID),
		CategoryID:   r.CategoryID,
		ProjectID:    r.ProjectID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		Amount:       *r.Amount,
		Quantity:     *r.Quantity,
		Total:        *r.Total,
		Date:         r.Date.Time,
		Notes:        r.Notes,
		ReceiptURL:   r.ReceiptURL,
		Status:       expense.Status(r.Status),
	}
}

// UpdateExpenseRequest represents the JSON body for updating an expense.
// Absent fields are left unchanged; the optional references and free-text
// fields may be set to null to clear them.
type UpdateExpenseRequest struct {
	DepartmentID *string          `json:"departmentId,omitempty"`
	EmployeeID   *string          `json:"employeeId,omitempty"`
	CategoryID   Nullable[string] `json:"expenseCatId,omitzero"`
	ProjectID    Nullable[string] `json:"projectId,omitzero"`
	ProductID    Nullable[string] `json:"productId,omitzero"`
	ProductName  Nullable[string] `json:"productName,omitzero"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	Date         *Date            `json:"date,omitempty"`
	Notes        Nullable[string] `json:"notes,omitzero"`
	ReceiptURL   Nullable[string] `json:"receiptUrl,omitzero"`
	Status       *string          `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateExpenseRequest) Validate() error {
	fields := make(map[string]string)

	if r.DepartmentID != nil && strings.TrimSpace(*r.DepartmentID) == "" {
		fields["departmentId"] = msgMustNotEmpty
	}
	if r.EmployeeID != nil && strings.TrimSpace(*r.EmployeeID) == "" {
		fields["employeeId"] = msgMustNotEmpty
	}
	if r.Status != nil && !expense.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts the request into an expense patch. Call Validate first.
func (r *UpdateExpenseRequest) Patch() *expense.Patch {
	p := &expense.Patch{
		CategoryID:  domainNullable(r.CategoryID, identity[string]),
		ProjectID:   domainNullable(r.ProjectID, identity[string]),
		ProductID:   domainNullable(r.ProductID, identity[string]),
		ProductName: domainNullable(r.ProductName, identity[string]),
		Amount:      r.Amount,
		Quantity:    r.Quantity,
		Total:       r.Total,
		Notes:       domainNullable(r.Notes, identity[string]),
		ReceiptURL:  domainNullable(r.ReceiptURL, identity[string]),
	}
	if r.DepartmentID != nil {
		v := strings.TrimSpace(*r.DepartmentID)
		p.DepartmentID = &v
	}
	if r.EmployeeID != nil {
		v := strings.TrimSpace(*r.EmployeeID)
		p.EmployeeID = &v
	}
	if r.Date != nil {
		t := r.Date.Time
		p.Date = &t
	}
	if r.Status != nil {
		s := expense.Status(*r.Status)
		p.Status = &s
	}
	return p
}

// ReportRequest represents the JSON body for rendering a project report.
// An empty html is rejected by the service.
type ReportRequest struct {
	HTML string `json:"html"`
}

// Validate accepts every body. It exists so the request can share the
// decode path of the other DTOs.
func (r *ReportRequest) Validate() error {
	return nil
}

func validateAllocationRequests(in []CostAllocationRequest, fields map[string]string) {
	for i, a := range in {
		if strings.TrimSpace(a.CategoryID) == "" {
			fields[fmt.Sprintf("costAllocations[%d].categoryId", i)] = msgRequired
		}
		if a.AllocatedAmount == nil {
			fields[fmt.Sprintf("costAllocations[%d].allocatedAmount", i)] = "allocatedAmount must be a valid number"
		}
	}
}

func allocationInputs(in []CostAllocationRequest) []project.AllocationInput {
	out := make([]project.AllocationInput, len(in))
	for i, a := range in {
		out[i] = project.AllocationInput{
			CategoryID:  a.CategoryID,
			Description: a.Description,
		}
		if a.AllocatedAmount != nil {
			out[i].AllocatedAmount = *a.AllocatedAmount
		}
	}
	return out
}
