package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates a zero-value ID, i.e. one the store never assigned.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by the store")

// ID is the identifier of a persisted record. The store assigns it on insert;
// the zero value is never a valid identifier.
//
// Example:
//
//	id, err := kernel.IDFromString(c.Param("fulfillment_id"))
//	if err != nil {
//	    return err
//	}
type ID struct {
	value int64
}

// NewID wraps a store-assigned identifier. Returns an error for non-positive values.
func NewID(value int64) (ID, error) {
	id := ID{value: value}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// IDFromString parses the decimal representation of an identifier.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not an integer", s))
	}
	return NewID(value)
}

// Int64 returns the raw identifier for persistence and transport.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual reports whether both identifiers refer to the same record.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Less reports whether i was assigned before other.
func (i ID) Less(other ID) bool {
	return i.value < other.value
}

// Validate returns ErrIDIsNotAssigned for the zero value and an invalid-value
// error for negative identifiers.
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotAssigned
	}
	if i.value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", i.value))
	}
	return nil
}
