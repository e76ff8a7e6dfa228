package configurator

import (
	"errors"
	"fmt"
)

// ErrMissingInput rejects a request before any planning happens.
var ErrMissingInput = errors.New("please fill in all required parameters")

// PlanningError wraps an unexpected fault while building the blueprint.
type PlanningError struct {
	Err error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("planning failed: %v", e.Err)
}

func (e *PlanningError) Unwrap() error { return e.Err }

// UnavailableError names the blueprint key no catalog part could satisfy.
type UnavailableError struct {
	Key string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("component not available: %s", e.Key)
}

// BudgetError rejects a fully selected configuration whose total price
// exceeds the requested budget.
type BudgetError struct {
	Total  float64
	Budget float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("configuration impossible, budget exceeded: %.2f > %.2f", e.Total, e.Budget)
}

// WeightError rejects a fully selected configuration whose total weight
// exceeds the requested ceiling.
type WeightError struct {
	Total float64
	Limit float64
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("configuration impossible, weight exceeded: %.2f > %.2f", e.Total, e.Limit)
}
