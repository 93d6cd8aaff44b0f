package fulfillment

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrFulfillmentIsNotConstructed is returned when a Fulfillment was not created
// through RestoreFulfillment.
var ErrFulfillmentIsNotConstructed = errors.New("Fulfillment must be created via RestoreFulfillment constructor")

// Fulfillment is a read model of a persisted fulfillment.
//
// Fulfillments are created and advanced by the store with conditional writes,
// so this type carries no mutators: a Fulfillment value is a snapshot of one
// committed state, never a partially updated one.
type Fulfillment struct {
	id              kernel.ID
	fulfillmentType Type
	status          Status

	isConstructed bool
}

// RestoreFulfillment rebuilds a Fulfillment from persisted values.
func RestoreFulfillment(id kernel.ID, fulfillmentType Type, status Status) (*Fulfillment, error) {
	if err := errors.Join(
		id.Validate(),
		fulfillmentType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Fulfillment{
		id:              id,
		fulfillmentType: fulfillmentType,
		status:          status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Fulfillment was built through RestoreFulfillment.
func (f *Fulfillment) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFulfillmentIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier.
func (f *Fulfillment) ID() kernel.ID {
	return f.id
}

// Type returns whether this is a pick-up or a delivery.
func (f *Fulfillment) Type() Type {
	return f.fulfillmentType
}

// Status returns the status at the time the snapshot was read.
func (f *Fulfillment) Status() Status {
	return f.status
}

// AcceptsLineItems reports whether line items could be attached at the time
// the snapshot was read. Admission itself is decided by the store.
func (f *Fulfillment) AcceptsLineItems() bool {
	return f.status.AcceptsLineItems()
}
