// Package guard lets value objects detect whether they were built through
// their constructor or are a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries. Only NewConstructorGuard
// produces a guard that passes Validate, so a zero-value struct is always rejected.
//
// Example:
//
//	type GetLineItemQuery struct {
//	    lineItemID kernel.ID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (q GetLineItemQuery) Validate() error {
//	    return q.guard.Validate(ErrGetLineItemQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
