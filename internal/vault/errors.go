// Package vault provides the append-only evidence store: validated inserts
// and newest-first retrieval of a user's evidence items.
package vault

import (
	"errors"
	"fmt"
)

// ValidationError represents malformed evidence input: missing required
// fields, unparseable dates, or out-of-range values. It surfaces to the
// caller and is never retried.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError represents a storage-layer failure (connection loss, failed
// insert) as opposed to bad input.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
