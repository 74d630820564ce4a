// Package category holds expense categories referenced by project cost
// allocations.
package category

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// MsgNameRequired is returned when an update carries no name.
const MsgNameRequired = "Insert the Expense Category name to update"

// ExpenseCategory groups cost allocations and expenses. Names are unique
// among live categories.
type ExpenseCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the ExpenseCategory entity.
func (c *ExpenseCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}
