package utils

import "fmt"

// ValidationError marks caller-supplied input that was rejected before any
// write happened. Controllers map it to a 400; it never reaches the stores.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
