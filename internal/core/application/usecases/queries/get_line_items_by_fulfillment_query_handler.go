package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

type GetLineItemsByFulfillmentQueryHandler struct {
	repo ports.LineItemRepository
}

func NewGetLineItemsByFulfillmentQueryHandler(repo ports.LineItemRepository) GetLineItemsByFulfillmentQueryHandler {
	return GetLineItemsByFulfillmentQueryHandler{repo: repo}
}

// Handle never returns a nil slice on success.
func (h GetLineItemsByFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetLineItemsByFulfillmentQuery,
) ([]LineItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.ListByFulfillment(ctx, query.FulfillmentID())
	if err != nil {
		return nil, err
	}

	responses := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, newLineItemResponse(item))
	}
	return responses, nil
}
