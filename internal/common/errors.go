package common

import "fmt"

// InsufficientStockError is returned when a requested decrement exceeds the
// item's current stock. Available and Requested are expressed in base units
// so handlers can surface the exact shortfall.
type InsufficientStockError struct {
	ItemID    string
	Available float64
	Requested float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s. Available: %g, Requested: %g", e.ItemID, e.Available, e.Requested)
}

// NotFoundError is returned when an entity does not exist or belongs to
// another hotel.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError is returned for malformed input: missing reasons, bad
// quantities, zero-delta adjustments, illegal state transitions.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
