package milestone

import (
	"fmt"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// AllocationExceededError reports that accepting a milestone would push the
// project past MaxTotalPercentage. Used is the sum of the sibling
// milestones that were counted.
type AllocationExceededError struct {
	Used     int
	Updating bool
}

func (e *AllocationExceededError) Error() string {
	if e.Updating {
		return fmt.Sprintf(
			"Cannot update milestone. Total percentage will exceed 100%%. Used by other milestones: %d%%.", e.Used)
	}
	return fmt.Sprintf(
		"Cannot create milestone. Total milestone percentage for this project will exceed 100%%. Currently used: %d%%.",
		e.Used)
}

func (e *AllocationExceededError) Unwrap() error {
	return domain.ErrValidation
}

// UsedPercentage sums the percentages of siblings, skipping excludeID.
func UsedPercentage(siblings []Milestone, excludeID string) int {
	used := 0
	for i := range siblings {
		if excludeID != "" && siblings[i].ID == excludeID {
			continue
		}
		used += siblings[i].Percentage
	}
	return used
}

// CheckAllocation decides whether candidate may be added to a project whose
// live milestones are siblings. A non-empty excludeID marks an update: that
// milestone is left out of the sum and the error wording changes.
func CheckAllocation(siblings []Milestone, candidate int, excludeID string) error {
	used := UsedPercentage(siblings, excludeID)
	if used+candidate > MaxTotalPercentage {
		return &AllocationExceededError{Used: used, Updating: excludeID != ""}
	}
	return nil
}

// NameTaken reports whether a sibling other than excludeID is called name.
func NameTaken(siblings []Milestone, name, excludeID string) bool {
	for i := range siblings {
		if siblings[i].ID != excludeID && siblings[i].Name == name {
			return true
		}
	}
	return false
}
