package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/projectledger/internal/domain"
	"github.com/jsamuelsen11/projectledger/internal/domain/category"
	"github.com/jsamuelsen11/projectledger/internal/domain/expense"
	"github.com/jsamuelsen11/projectledger/internal/domain/milestone"
	"github.com/jsamuelsen11/projectledger/internal/domain/project"
)

// Not-found messages returned to callers.
const (
	msgProjectNotFound   = "Project not found"
	msgMilestoneNotFound = "Milestone does not exist"
	msgCategoryNotFound  = "Expense category does not exist"
	msgExpenseNotFound   = "Expense does not exist"
)

// translateError maps GORM errors to domain errors. notFound is the message
// used when the lookup matched no live row.
func translateError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundf("%s", notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(domain.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.Error{Kind: domain.ErrValidation, Message: "referenced record does not exist"}
	default:
		return err
	}
}

func toProjectRow(p *project.Project) projectRow {
	return projectRow{
		ID:          p.ID,
		Name:        p.Name,
		ClientName:  p.ClientName,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProject(r *projectRow) project.Project {
	return project.Project{
		ID:          r.ID,
		Name:        r.Name,
		ClientName:  r.ClientName,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
		Status:      project.Status(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAssignment(r *assignmentRow) project.Assignment {
	return project.Assignment{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		EmployeeID: r.EmployeeID,
		Role:       r.Role,
		AssignedAt: r.AssignedAt,
	}
}

func toAllocation(r *allocationRow) project.CostAllocation {
	a := project.CostAllocation{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		CategoryID:      r.CategoryID,
		AllocatedAmount: r.AllocatedAmount,
		Description:     r.Description,
	}
	if r.Category != nil {
		a.CategoryName = r.Category.Name
	}
	return a
}

func toMilestoneRow(m *milestone.Milestone) milestoneRow {
	return milestoneRow{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		Percentage:   m.Percentage,
		Description:  m.Description,
		TargetDate:   m.TargetDate,
		AchievedDate: m.AchievedDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMilestone(r *milestoneRow) milestone.Milestone {
	m := milestone.Milestone{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Name:         r.Name,
		Percentage:   r.Percentage,
		Description:  r.Description,
		TargetDate:   r.TargetDate,
		AchievedDate: r.AchievedDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Project != nil {
		m.ProjectName = r.Project.Name
	}
	return m
}

func toCategory(r *categoryRow) category.ExpenseCategory {
	return category.ExpenseCategory{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toExpenseRow(e *expense.Expense) expenseRow {
	return expenseRow{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		EmployeeID:   e.EmployeeID,
		CategoryID:   e.CategoryID,
		ProjectID:    e.ProjectID,
		ProductID:    e.ProductID,
		ProductName:  e.ProductName,
		Amount:       e.Amount,
		Quantity:     e.Quantity,
		Total:        e.Total,
		Date:         e.Date,
		Notes:        e.Notes,
		ReceiptURL:   e.ReceiptURL,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toExpense(r *expenseRow) expense.Expense {
	e := expense.Expense{
		ID:           r.ID,
		DepartmentID: r.DepartmentID,
		EmployeeID:   r.EmployeeID,
		CategoryID:   r.CategoryID,
		ProjectID:    r.ProjectID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		Amount:       r.Amount,
		Quantity:     r.Quantity,
		Total:        r.Total,
		Date:         r.Date,
		Notes:        r.Notes,
		ReceiptURL:   r.ReceiptURL,
		Status:       expense.Status(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Category != nil {
		e.CategoryName = r.Category.Name
	}
	return e
}
