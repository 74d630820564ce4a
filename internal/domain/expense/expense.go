// Package expense holds employee expenses: what was bought, by whom, for
// which department, and optionally against which category and project.
// Departments, employees and products are owned by other systems and are
// referenced by opaque id only.
package expense

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// CategoryOther is the category id clients send for an expense that fits no
// category. It is stored as no category.
const CategoryOther = "other"

// Status is the approval state of an expense.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Expense is one purchase reported by an employee. CategoryName is
// populated on reads only.
type Expense struct {
	ID           string
	DepartmentID string
	EmployeeID   string
	CategoryID   *string
	CategoryName string
	ProjectID    *string
	ProductID    *string
	ProductName  *string
	Amount       decimal.Decimal
	Quantity     int
	Total        decimal.Decimal
	Date         time.Time
	Notes        *string
	ReceiptURL   *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks business rules for the Expense entity.
func (e *Expense) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.DepartmentID) == "" {
		fields["departmentId"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.EmployeeID) == "" {
		fields["employeeId"] = domain.MsgRequired
	}
	if e.Amount.IsNegative() {
		fields["amount"] = fmt.Sprintf("must not be negative, got %s", e.Amount)
	}
	if e.Quantity < 0 {
		fields["quantity"] = fmt.Sprintf("must not be negative, got %d", e.Quantity)
	}
	if e.Total.IsNegative() {
		fields["total"] = fmt.Sprintf("must not be negative, got %s", e.Total)
	}
	if e.Date.IsZero() {
		fields["date"] = domain.MsgRequired
	}
	if e.ReceiptURL != nil && !isWebURL(*e.ReceiptURL) {
		fields["receiptUrl"] = "receiptUrl must be a valid URL"
	}
	if !e.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", e.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft is the input for reporting an expense.
type Draft struct {
	DepartmentID string
	EmployeeID   string
	CategoryID   *string
	ProjectID    *string
	ProductID    *string
	ProductName  *string
	Amount       decimal.Decimal
	Quantity     int
	Total        decimal.Decimal
	Date         time.Time
	Notes        *string
	ReceiptURL   *string
	Status       Status
}

// Expense builds the expense described by the draft. Status defaults to
// StatusPending and CategoryOther becomes no category.
func (d *Draft) Expense() *Expense {
	status := d.Status
	if status == "" {
		status = StatusPending
	}
	return &Expense{
		DepartmentID: d.DepartmentID,
		EmployeeID:   d.EmployeeID,
		CategoryID:   categoryRef(d.CategoryID),
		ProjectID:    d.ProjectID,
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		Amount:       d.Amount,
		Quantity:     d.Quantity,
		Total:        d.Total,
		Date:         d.Date,
		Notes:        d.Notes,
		ReceiptURL:   d.ReceiptURL,
		Status:       status,
	}
}

// Patch is a partial expense update. Nil pointers and unset Nullables keep
// the stored value; a null Nullable clears it.
type Patch struct {
	DepartmentID *string
	EmployeeID   *string
	CategoryID   domain.Nullable[string]
	ProjectID    domain.Nullable[string]
	ProductID    domain.Nullable[string]
	ProductName  domain.Nullable[string]
	Amount       *decimal.Decimal
	Quantity     *int
	Total        *decimal.Decimal
	Date         *time.Time
	Notes        domain.Nullable[string]
	ReceiptURL   domain.Nullable[string]
	Status       *Status
}

// Apply merges a patch into the expense.
func (e *Expense) Apply(p *Patch) {
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
	if p.EmployeeID != nil {
		e.EmployeeID = *p.EmployeeID
	}
	if p.CategoryID.Set {
		e.CategoryID = categoryRef(p.CategoryID.ApplyTo(e.CategoryID))
		e.CategoryName = ""
	}
	e.ProjectID = p.ProjectID.ApplyTo(e.ProjectID)
	e.ProductID = p.ProductID.ApplyTo(e.ProductID)
	e.ProductName = p.ProductName.ApplyTo(e.ProductName)
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Quantity != nil {
		e.Quantity = *p.Quantity
	}
	if p.Total != nil {
		e.Total = *p.Total
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	e.Notes = p.Notes.ApplyTo(e.Notes)
	e.ReceiptURL = p.ReceiptURL.ApplyTo(e.ReceiptURL)
	if p.Status != nil {
		e.Status = *p.Status
	}
}

// categoryRef maps CategoryOther and blank ids to no category.
func categoryRef(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" || v == CategoryOther {
		return nil
	}
	return &v
}

func isWebURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
