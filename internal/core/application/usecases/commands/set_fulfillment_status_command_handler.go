package commands

import "context"

// SetFulfillmentStatusCommandHandler applies status transitions.
//
// The handler never reads the current status first. A read followed by a
// write would let two callers both see New and both move to Initialized;
// the store's conditional update makes exactly one of them succeed.
type SetFulfillmentStatusCommandHandler struct {
	repoFactory FulfillmentRepoFactory
}

// NewSetFulfillmentStatusCommandHandler creates a handler for status transitions.
func NewSetFulfillmentStatusCommandHandler(repoFactory FulfillmentRepoFactory) SetFulfillmentStatusCommandHandler {
	return SetFulfillmentStatusCommandHandler{
		repoFactory: repoFactory,
	}
}

// Handle returns errs.BadInputError when the fulfillment is unknown or the
// transition is illegal, and errs.ProviderFailureError when the store fails.
// Failures are not retried.
func (h SetFulfillmentStatusCommandHandler) Handle(ctx context.Context, cmd SetFulfillmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.repoFactory.FulfillmentRepository().SetStatus(ctx, cmd.FulfillmentID(), cmd.Status())
}
