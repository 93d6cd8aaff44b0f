package lineitem

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxQuantity is the largest quantity the store can hold for a line item.
const MaxQuantity int64 = math.MaxInt32

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via RestoreLineItem constructor")

// LineItem is a read model of a persisted line item.
type LineItem struct {
	id                kernel.ID
	fulfillmentID     kernel.ID
	productID         kernel.ID
	quantity          int64
	quantityFulfilled int64

	isConstructed bool
}

// ValidateQuantity checks that a requested quantity is within (0, MaxQuantity].
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

// RestoreLineItem rebuilds a LineItem from persisted values.
func RestoreLineItem(
	id kernel.ID,
	fulfillmentID kernel.ID,
	productID kernel.ID,
	quantity int64,
	quantityFulfilled int64,
) (*LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		fulfillmentID.Validate(),
		productID.Validate(),
		ValidateQuantity(quantity),
		validateQuantityFulfilled(quantityFulfilled),
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:                id,
		fulfillmentID:     fulfillmentID,
		productID:         productID,
		quantity:          quantity,
		quantityFulfilled: quantityFulfilled,
		isConstructed:     true,
	}, nil
}

// Validate ensures the LineItem was built through RestoreLineItem.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l *LineItem) ID() kernel.ID {
	return l.id
}

func (l *LineItem) FulfillmentID() kernel.ID {
	return l.fulfillmentID
}

func (l *LineItem) ProductID() kernel.ID {
	return l.productID
}

func (l *LineItem) Quantity() int64 {
	return l.quantity
}

// QuantityFulfilled returns how much of Quantity has been satisfied so far.
func (l *LineItem) QuantityFulfilled() int64 {
	return l.quantityFulfilled
}

func validateQuantityFulfilled(quantityFulfilled int64) error {
	if quantityFulfilled < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity fulfilled is invalid",
			fmt.Errorf("%d is negative", quantityFulfilled),
		)
	}
	return nil
}
