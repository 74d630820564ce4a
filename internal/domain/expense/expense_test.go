package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

func strPtr(s string) *string { return &s }

var day = time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)

func validDraft() *Draft {
	return &Draft{
		DepartmentID: "d-1",
		EmployeeID:   "e-1",
		CategoryID:   strPtr("c-1"),
		Amount:       decimal.RequireFromString("19.99"),
		Quantity:     3,
		Total:        decimal.RequireFromString("59.97"),
		Date:         day,
	}
}

func TestDraft_Expense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		category     *string
		status       Status
		wantCategory *string
		wantStatus   Status
	}{
		{name: "defaults to pending", category: strPtr("c-1"), wantCategory: strPtr("c-1"), wantStatus: StatusPending},
		{name: "keeps explicit status", status: StatusApproved, wantStatus: StatusApproved},
		{name: "other means no category", category: strPtr(CategoryOther), wantStatus: StatusPending},
		{name: "blank means no category", category: strPtr("  "), wantStatus: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := validDraft()
			d.CategoryID = tt.category
			d.Status = tt.status
			e := d.Expense()

			if e.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", e.Status, tt.wantStatus)
			}
			switch {
			case tt.wantCategory == nil && e.CategoryID != nil:
				t.Errorf("CategoryID = %q, want nil", *e.CategoryID)
			case tt.wantCategory != nil && (e.CategoryID == nil || *e.CategoryID != *tt.wantCategory):
				t.Errorf("CategoryID = %v, want %q", e.CategoryID, *tt.wantCategory)
			}
		})
	}
}

func TestExpense_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		modify     func(*Expense)
		wantFields []string
	}{
		{name: "valid", modify: func(*Expense) {}},
		{name: "free of charge", modify: func(e *Expense) { e.Amount, e.Total = decimal.Zero, decimal.Zero }},
		{
			name:       "missing owners",
			modify:     func(e *Expense) { e.DepartmentID, e.EmployeeID = "", " " },
			wantFields: []string{"departmentId", "employeeId"},
		},
		{
			name: "negative figures",
			modify: func(e *Expense) {
				e.Amount = decimal.NewFromInt(-1)
				e.Quantity = -2
				e.Total = decimal.NewFromInt(-3)
			},
			wantFields: []string{"amount", "quantity", "total"},
		},
		{name: "no date", modify: func(e *Expense) { e.Date = time.Time{} }, wantFields: []string{"date"}},
		{name: "unknown status", modify: func(e *Expense) { e.Status = "PAID" }, wantFields: []string{"status"}},
		{name: "receipt not a url", modify: func(e *Expense) { e.ReceiptURL = strPtr("receipt.png") }, wantFields: []string{"receiptUrl"}},
		{name: "receipt not http", modify: func(e *Expense) { e.ReceiptURL = strPtr("ftp://files/r.png") }, wantFields: []string{"receiptUrl"}},
		{name: "receipt url", modify: func(e *Expense) { e.ReceiptURL = strPtr("https://files.example.com/r/42.pdf") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := validDraft().Expense()
			tt.modify(e)
			err := e.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestExpense_Apply(t *testing.T) {
	t.Parallel()

	stored := func() *Expense {
		e := validDraft().Expense()
		e.CategoryName = "Travel"
		e.Notes = strPtr("taxi")
		e.ProjectID = strPtr("p-1")
		return e
	}

	t.Run("empty patch keeps everything", func(t *testing.T) {
		t.Parallel()

		e := stored()
		e.Apply(&Patch{})
		if *e.CategoryID != "c-1" || e.CategoryName != "Travel" || *e.Notes != "taxi" || *e.ProjectID != "p-1" {
			t.Errorf("Apply(empty) = %+v, want unchanged", e)
		}
		if e.Quantity != 3 || !e.Total.Equal(decimal.RequireFromString("59.97")) {
			t.Errorf("figures changed: quantity %d, total %s", e.Quantity, e.Total)
		}
	})

	t.Run("values and nulls", func(t *testing.T) {
		t.Parallel()

		qty := 1
		approved := StatusApproved
		e := stored()
		e.Apply(&Patch{
			CategoryID: domain.Some("c-2"),
			Notes:      domain.Null[string](),
			ProjectID:  domain.Null[string](),
			Quantity:   &qty,
			Status:     &approved,
		})

		if e.CategoryID == nil || *e.CategoryID != "c-2" || e.CategoryName != "" {
			t.Errorf("category = %v/%q, want c-2 with name to resolve", e.CategoryID, e.CategoryName)
		}
		if e.Notes != nil || e.ProjectID != nil {
			t.Errorf("notes/project = %v/%v, want cleared", e.Notes, e.ProjectID)
		}
		if e.Quantity != 1 || e.Status != StatusApproved {
			t.Errorf("quantity/status = %d/%s, want 1/APPROVED", e.Quantity, e.Status)
		}
	})

	t.Run("other clears the category", func(t *testing.T) {
		t.Parallel()

		e := stored()
		e.Apply(&Patch{CategoryID: domain.Some(CategoryOther)})
		if e.CategoryID != nil || e.CategoryName != "" {
			t.Errorf("category = %v/%q, want none", e.CategoryID, e.CategoryName)
		}
	})
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !s.IsValid() {
			t.Errorf("%q.IsValid() = false", s)
		}
	}
	for _, s := range []Status{"", "pending", "PAID"} {
		if s.IsValid() {
			t.Errorf("%q.IsValid() = true", s)
		}
	}
}
