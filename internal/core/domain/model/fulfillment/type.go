package fulfillment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Type tells whether a fulfillment picks stock up or delivers it.
// It is set at creation and never changes.
type Type int

const (
	// UnknownType is the zero value and never a valid type.
	UnknownType Type = iota
	StockPickUp
	StockDelivery
)

var typeStrings = map[Type]string{
	StockPickUp:   "StockPickUp",
	StockDelivery: "StockDelivery",
}

// ParseType converts the persisted or transported name of a type.
func ParseType(s string) (Type, error) {
	for t, str := range typeStrings {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"fulfillment type is invalid",
		fmt.Errorf("%q is not a valid fulfillment type", s),
	)
}

// Validate returns an error unless t is StockPickUp or StockDelivery.
func (t Type) Validate() error {
	if _, ok := typeStrings[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment type is invalid",
			fmt.Errorf("%d is not a valid fulfillment type", t),
		)
	}
	return nil
}

func (t Type) String() string {
	if str, ok := typeStrings[t]; ok {
		return str
	}
	return "Unknown"
}
