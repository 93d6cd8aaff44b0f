package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// CreateFulfillmentCommandHandler opens fulfillments in status New.
type CreateFulfillmentCommandHandler struct {
	repoFactory FulfillmentRepoFactory
}

// NewCreateFulfillmentCommandHandler creates a handler for fulfillment creation.
func NewCreateFulfillmentCommandHandler(repoFactory FulfillmentRepoFactory) CreateFulfillmentCommandHandler {
	return CreateFulfillmentCommandHandler{
		repoFactory: repoFactory,
	}
}

// Handle stores the new fulfillment and returns the id the store assigned.
func (h CreateFulfillmentCommandHandler) Handle(ctx context.Context, cmd CreateFulfillmentCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	return h.repoFactory.FulfillmentRepository().Create(ctx, cmd.Type())
}
