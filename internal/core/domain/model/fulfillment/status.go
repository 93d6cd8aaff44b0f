package fulfillment

import (
	"fmt"
	"slices"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a fulfillment.
//
// State transitions:
//
//	New ──> Initialized ──> InProgress ──> Fulfilled
//
// Status is persisted by its String form.
type Status int

const (
	// UnknownStatus is the zero value and never a valid status.
	UnknownStatus Status = iota

	// New is the entry state. Line items can only be attached in this state.
	New

	// Initialized follows New.
	Initialized

	// InProgress follows Initialized.
	InProgress

	// Fulfilled is the terminal state.
	Fulfilled
)

var statusStrings = map[Status]string{
	New:         "New",
	Initialized: "Initialized",
	InProgress:  "InProgress",
	Fulfilled:   "Fulfilled",
}

// allowedPredecessors maps every valid status to the statuses a transition into it
// may start from. New has none: no transition ever lands on the entry state.
var allowedPredecessors = map[Status][]Status{
	New:         {},
	Initialized: {New},
	InProgress:  {Initialized},
	Fulfilled:   {InProgress},
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{New, Initialized, InProgress, Fulfilled}
}

// ParseStatus converts the persisted or transported name of a status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate returns an error unless s is one of New, Initialized, InProgress, Fulfilled.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedPredecessors returns the statuses from which a direct transition into s
// is legal. The result is empty for New and for invalid statuses.
// The returned slice is a copy and may be modified by the caller.
func (s Status) AllowedPredecessors() []Status {
	return slices.Clone(allowedPredecessors[s])
}

// CanFollow reports whether a fulfillment currently in prev may move to s.
func (s Status) CanFollow(prev Status) bool {
	return slices.Contains(allowedPredecessors[s], prev)
}

// TransitionTo returns target if moving from s to target is legal.
// An illegal transition is reported as bad input and is never worth retrying.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !target.CanFollow(s) {
		return UnknownStatus, errs.NewBadInputErrorWithCause(
			"bad fulfillment status transition",
			fmt.Errorf("%s is not a valid status to move to %s", s, target),
		)
	}
	return target, nil
}

// IsTerminal reports whether no transition can start from s.
func (s Status) IsTerminal() bool {
	for _, preds := range allowedPredecessors {
		if slices.Contains(preds, s) {
			return false
		}
	}
	return true
}

// AcceptsLineItems reports whether line items may be attached in this status.
func (s Status) AcceptsLineItems() bool {
	return s == New
}
