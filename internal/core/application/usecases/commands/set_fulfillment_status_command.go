package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetFulfillmentStatusCommandIsNotConstructed = errors.New(
	"SetFulfillmentStatusCommand must be created via NewSetFulfillmentStatusCommand constructor",
)

// SetFulfillmentStatusCommand requests moving a fulfillment to a new status.
// Whether the move is legal is decided by the store at write time, not here.
//
// Example:
//
//	cmd, err := NewSetFulfillmentStatusCommand(id, fulfillment.Initialized)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrBadInput) {
//	    // unknown fulfillment or illegal transition
//	}
type SetFulfillmentStatusCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.ID
	status        fulfillment.Status

	guard guard.ConstructorGuard
}

// NewSetFulfillmentStatusCommand validates the id and the target status.
func NewSetFulfillmentStatusCommand(
	fulfillmentID kernel.ID,
	status fulfillment.Status,
) (SetFulfillmentStatusCommand, error) {
	cmd := SetFulfillmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillmentID(fulfillmentID),
		cmd.setStatus(status),
	); err != nil {
		return SetFulfillmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFulfillmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetFulfillmentStatusCommandIsNotConstructed)
}

// FulfillmentID returns the fulfillment to move.
func (c SetFulfillmentStatusCommand) FulfillmentID() kernel.ID {
	return c.fulfillmentID
}

// Status returns the target status.
func (c SetFulfillmentStatusCommand) Status() fulfillment.Status {
	return c.status
}

func (c *SetFulfillmentStatusCommand) setFulfillmentID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = id
	return nil
}

func (c *SetFulfillmentStatusCommand) setStatus(status fulfillment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
