package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// CreateLineItemCommandHandler admits line items into New fulfillments.
//
// Example:
//
//	cmd, _ := NewCreateLineItemCommand(fulfillmentID, productID, 3)
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrBadInput):
//	    log.Println("fulfillment is missing or already started")
//	case err != nil:
//	    log.Printf("store failure: %v", err)
//	}
type CreateLineItemCommandHandler struct {
	repoFactory LineItemRepoFactory
}

// NewCreateLineItemCommandHandler creates a handler for line item creation.
func NewCreateLineItemCommandHandler(repoFactory LineItemRepoFactory) CreateLineItemCommandHandler {
	return CreateLineItemCommandHandler{
		repoFactory: repoFactory,
	}
}

// Handle returns the new line item id. A fulfillment that does not exist and
// one that has left New both yield errs.BadInputError.
func (h CreateLineItemCommandHandler) Handle(ctx context.Context, cmd CreateLineItemCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	return h.repoFactory.LineItemRepository().Create(ctx, cmd.FulfillmentID(), cmd.ProductID(), cmd.Quantity())
}
