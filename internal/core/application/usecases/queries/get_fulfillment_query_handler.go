package queries

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetFulfillmentQueryHandler serves GetFulfillmentQuery from the fulfillment store.
type GetFulfillmentQueryHandler struct {
	repo ports.FulfillmentRepository
}

func NewGetFulfillmentQueryHandler(repo ports.FulfillmentRepository) GetFulfillmentQueryHandler {
	return GetFulfillmentQueryHandler{repo: repo}
}

// Handle returns errs.ObjectNotFoundError when no fulfillment has the id.
func (h GetFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentQuery,
) (GetFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentQueryResponse{}, err
	}

	f, found, err := h.repo.Get(ctx, query.FulfillmentID())
	if err != nil {
		return GetFulfillmentQueryResponse{}, err
	}
	if !found {
		return GetFulfillmentQueryResponse{}, errs.NewObjectNotFoundError("fulfillment", query.FulfillmentID().String())
	}

	return GetFulfillmentQueryResponse{
		ID:     f.ID(),
		Type:   f.Type(),
		Status: f.Status(),
	}, nil
}
