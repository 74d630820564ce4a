// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// MessageResponse carries a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProjectResponse represents a single project in HTTP responses.
// Budget is encoded as a decimal string.
type ProjectResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ClientName  *string         `json:"clientName"`
	Description *string         `json:"description"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ClientName:  p.ClientName,
		Description: p.Description,
		StartDate:   formatTime(p.StartDate),
		EndDate:     formatTime(p.EndDate),
		Budget:      p.Budget,
		Status:      p.Status.String(),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

// AssignmentResponse represents an employee assignment.
type AssignmentResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
	AssignedAt string `json:"assignedAt"`
}

func toAssignments(in []project.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, len(in))
	for i, a := range in {
		out[i] = AssignmentResponse{
			ID:         a.ID,
			ProjectID:  a.ProjectID,
			EmployeeID: a.EmployeeID,
			Role:       a.Role,
			AssignedAt: formatTime(a.AssignedAt),
		}
	}
	return out
}

// CostAllocationResponse represents a cost allocation line.
type CostAllocationResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    string          `json:"categoryName,omitempty"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	Description     string          `json:"description"`
}

func toAllocations(in []project.CostAllocation) []CostAllocationResponse {
	out := make([]CostAllocationResponse, len(in))
	for i, a := range in {
		out[i] = CostAllocationResponse{
			ID:              a.ID,
			ProjectID:       a.ProjectID,
			CategoryID:      a.CategoryID,
			CategoryName:    a.CategoryName,
			AllocatedAmount: a.AllocatedAmount,
			Description:     a.Description,
		}
	}
	return out
}

// ProjectSummaryResponse is one entry of the project list.
type ProjectSummaryResponse struct {
	ProjectResponse
	Assignments              []AssignmentResponse `json:"assignments"`
	TotalMilestonePercentage int                  `json:"totalMilestonePercentage"`
	TotalAchievedPercentage  int                  `json:"totalAchievedPercentage"`
	TotalRemainingPercentage int                  `json:"totalRemainingPercentage"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
	Count    int                      `json:"count"`
}

// ToProjectListResponse converts project summaries to an HTTP list response DTO.
func ToProjectListResponse(summaries []ports.ProjectSummary) ProjectListResponse {
	items := make([]ProjectSummaryResponse, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		items[i] = ProjectSummaryResponse{
			ProjectResponse:          ToProjectResponse(&s.Project),
			Assignments:              toAssignments(s.Assignments),
			TotalMilestonePercentage: s.Milestones.Total,
			TotalAchievedPercentage:  s.Milestones.Achieved,
			TotalRemainingPercentage: s.Milestones.Remaining,
		}
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// ProjectDetailResponse is the full view of a single project.
type ProjectDetailResponse struct {
	ProjectResponse
	Assignments     []AssignmentResponse     `json:"assignments"`
	CostAllocations []CostAllocationResponse `json:"costAllocations"`
	Milestones      []MilestoneResponse      `json:"milestones"`
}

// ToProjectDetailResponse converts a project read model to its HTTP DTO.
func ToProjectDetailResponse(d *ports.ProjectDetail) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: ToProjectResponse(&d.Project),
		Assignments:     toAssignments(d.Assignments),
		CostAllocations: toAllocations(d.Allocations),
		Milestones:      ToMilestoneResponses(d.Milestones),
	}
}

// CreateProjectResponse is returned by project creation.
type CreateProjectResponse struct {
	Project     ProjectResponse          `json:"project"`
	Assignments []AssignmentResponse     `json:"assignments"`
	Allocations []CostAllocationResponse `json:"allocations"`
}

// ToCreateProjectResponse converts a created aggregate.
func ToCreateProjectResponse(a *project.Aggregate) CreateProjectResponse {
	return CreateProjectResponse{
		Project:     ToProjectResponse(&a.Project),
		Assignments: toAssignments(a.Assignments),
		Allocations: toAllocations(a.Allocations),
	}
}

// UpdateProjectResponse is returned by project updates. It names the
// allocation list costAllocations, unlike the create response.
type UpdateProjectResponse struct {
	Project         ProjectResponse          `json:"project"`
	Assignments     []AssignmentResponse     `json:"assignments"`
	CostAllocations []CostAllocationResponse `json:"costAllocations"`
}

// ToUpdateProjectResponse converts an updated aggregate.
func ToUpdateProjectResponse(a *project.Aggregate) UpdateProjectResponse {
	return UpdateProjectResponse{
		Project:         ToProjectResponse(&a.Project),
		Assignments:     toAssignments(a.Assignments),
		CostAllocations: toAllocations(a.Allocations),
	}
}

// MilestoneResponse represents a single milestone. achievedDate is null
// until the milestone is reached.
type MilestoneResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName,omitempty"`
	Name         string  `json:"name"`
	Percentage   int     `json:"percentage"`
	Description  string  `json:"description"`
	TargetDate   string  `json:"targetDate"`
	AchievedDate *string `json:"achievedDate"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToMilestoneResponse converts a domain Milestone to an HTTP response DTO.
func ToMilestoneResponse(m *milestone.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		ProjectName:  m.ProjectName,
		Name:         m.Name,
		Percentage:   m.Percentage,
		Description:  m.Description,
		TargetDate:   formatTime(m.TargetDate),
		AchievedDate: formatTimePtr(m.AchievedDate),
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
	}
}

// ToMilestoneResponses converts a slice of milestones.
func ToMilestoneResponses(ms []milestone.Milestone) []MilestoneResponse {
	out := make([]MilestoneResponse, len(ms))
	for i := range ms {
		out[i] = ToMilestoneResponse(&ms[i])
	}
	return out
}

// ProgressResponse is the achieved/remaining split of one project.
type ProgressResponse struct {
	ProjectID           string `json:"projectId"`
	ProjectName         string `json:"projectName"`
	AchievedPercentage  int    `json:"achievedPercentage"`
	RemainingPercentage int    `json:"remainingPercentage"`
}

// ToProgressResponses converts per-project progress.
func ToProgressResponses(in []milestone.Progress) []ProgressResponse {
	out := make([]ProgressResponse, len(in))
	for i, p := range in {
		out[i] = ProgressResponse{
			ProjectID:           p.ProjectID,
			ProjectName:         p.ProjectName,
			AchievedPercentage:  p.Achieved,
			RemainingPercentage: p.Remaining,
		}
	}
	return out
}

// CategoryResponse represents an expense category.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToCategoryResponse converts a domain ExpenseCategory.
func ToCategoryResponse(c *category.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(in []category.ExpenseCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(in))
	for i := range in {
		out[i] = ToCategoryResponse(&in[i])
	}
	return out
}

// ExpenseResponse represents an expense. expenseCatId is null for
// expenses in no category.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	DepartmentID string          `json:"departmentId"`
	EmployeeID   string          `json:"employeeId"`
	CategoryID   *string         `json:"expenseCatId"`
	CategoryName string          `json:"categoryName,omitempty"`
	ProjectID    *string         `json:"projectId"`
	ProductID    *string         `json:"productId"`
	ProductName  *string         `json:"productName"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"date"`
	Notes        *string         `json:"notes"`
	ReceiptURL   *string         `json:"receiptUrl"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// ToExpenseResponse converts a domain Expense.
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		EmployeeID:   e.EmployeeID,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		ProjectID:    e.ProjectID,
		ProductID:    e.ProductID,
		ProductName:  e.ProductName,
		Amount:       e.Amount,
		Quantity:     e.Quantity,
		Total:        e.Total,
		Date:         formatTime(e.Date),
		Notes:        e.Notes,
		ReceiptURL:   e.ReceiptURL,
		Status:       string(e.Status),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

// ToExpenseResponses converts a slice of expenses.
func ToExpenseResponses(in []expense.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(in))
	for i := range in {
		out[i] = ToExpenseResponse(&in[i])
	}
	return out
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency to "ok" or its error text.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
