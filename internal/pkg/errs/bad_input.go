package errs

import (
	"errors"
	"fmt"
)

// ErrBadInput is the sentinel wrapped by every BadInputError.
var ErrBadInput = errors.New("bad input")

// BadInputError reports a request that cannot be satisfied given the current
// stored state, such as an illegal status transition. It is never retried.
type BadInputError struct {
	Reason string
	Cause  error
}

// NewBadInputError creates a BadInputError without an underlying cause.
func NewBadInputError(reason string) *BadInputError {
	return &BadInputError{Reason: reason}
}

// NewBadInputErrorWithCause creates a BadInputError that wraps cause.
func NewBadInputErrorWithCause(reason string, cause error) *BadInputError {
	return &BadInputError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *BadInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBadInput, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBadInput, e.Reason)
}

func (e *BadInputError) Unwrap() error {
	return ErrBadInput
}
