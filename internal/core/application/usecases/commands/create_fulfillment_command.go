package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateFulfillmentCommandIsNotConstructed = errors.New(
	"CreateFulfillmentCommand must be created via NewCreateFulfillmentCommand constructor",
)

// CreateFulfillmentCommand represents a request to open a new fulfillment.
//
// Example:
//
//	cmd, err := NewCreateFulfillmentCommand(fulfillment.StockPickUp)
//	if err != nil {
//	    return fmt.Errorf("invalid fulfillment data: %w", err)
//	}
//
//	handler := NewCreateFulfillmentCommandHandler(provider)
//	id, err := handler.Handle(ctx, cmd)
type CreateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentType fulfillment.Type

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentCommand validates the fulfillment type.
func NewCreateFulfillmentCommand(fulfillmentType fulfillment.Type) (CreateFulfillmentCommand, error) {
	cmd := CreateFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setType(fulfillmentType); err != nil {
		return CreateFulfillmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentCommandIsNotConstructed)
}

// Type returns the kind of fulfillment to create.
func (c CreateFulfillmentCommand) Type() fulfillment.Type {
	return c.fulfillmentType
}

func (c *CreateFulfillmentCommand) setType(fulfillmentType fulfillment.Type) error {
	if err := fulfillmentType.Validate(); err != nil {
		return err
	}

	c.fulfillmentType = fulfillmentType
	return nil
}
