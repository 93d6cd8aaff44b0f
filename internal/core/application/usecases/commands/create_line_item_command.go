package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateLineItemCommandIsNotConstructed = errors.New(
	"CreateLineItemCommand must be created via NewCreateLineItemCommand constructor",
)

// CreateLineItemCommand requests attaching a product quantity to a fulfillment.
type CreateLineItemCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.ID
	productID     kernel.ID
	quantity      int64

	guard guard.ConstructorGuard
}

// NewCreateLineItemCommand validates ids and quantity. It does not check the
// fulfillment status; admission is decided by the store.
func NewCreateLineItemCommand(fulfillmentID, productID kernel.ID, quantity int64) (CreateLineItemCommand, error) {
	cmd := CreateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillmentID(fulfillmentID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateLineItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateLineItemCommandIsNotConstructed)
}

func (c CreateLineItemCommand) FulfillmentID() kernel.ID {
	return c.fulfillmentID
}

func (c CreateLineItemCommand) ProductID() kernel.ID {
	return c.productID
}

func (c CreateLineItemCommand) Quantity() int64 {
	return c.quantity
}

func (c *CreateLineItemCommand) setFulfillmentID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = id
	return nil
}

func (c *CreateLineItemCommand) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateLineItemCommand) setQuantity(quantity int64) error {
	if err := lineitem.ValidateQuantity(quantity); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
