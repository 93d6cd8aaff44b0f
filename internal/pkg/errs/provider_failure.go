package errs

import (
	"errors"
	"fmt"
)

// ErrProviderFailure is the sentinel wrapped by every ProviderFailureError.
var ErrProviderFailure = errors.New("provider failure")

// ProviderFailureError reports that the storage layer failed or returned a
// result that would only be possible if the store were corrupted.
type ProviderFailureError struct {
	Operation string
	Cause     error
}

// NewProviderFailureError creates a ProviderFailureError without an underlying cause.
func NewProviderFailureError(operation string) *ProviderFailureError {
	return &ProviderFailureError{Operation: operation}
}

// NewProviderFailureErrorWithCause creates a ProviderFailureError that wraps cause.
func NewProviderFailureErrorWithCause(operation string, cause error) *ProviderFailureError {
	return &ProviderFailureError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *ProviderFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrProviderFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrProviderFailure, e.Operation)
}

// Unwrap exposes both the sentinel and the cause so callers can match either.
func (e *ProviderFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrProviderFailure}
	}
	return []error{ErrProviderFailure, e.Cause}
}
