package queries

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type GetLineItemQueryHandler struct {
	repo ports.LineItemRepository
}

func NewGetLineItemQueryHandler(repo ports.LineItemRepository) GetLineItemQueryHandler {
	return GetLineItemQueryHandler{repo: repo}
}

// Handle turns a missing line item into errs.ObjectNotFoundError.
func (h GetLineItemQueryHandler) Handle(ctx context.Context, query GetLineItemQuery) (LineItemResponse, error) {
	if err := query.Validate(); err != nil {
		return LineItemResponse{}, err
	}

	item, found, err := h.repo.Get(ctx, query.LineItemID())
	if err != nil {
		return LineItemResponse{}, err
	}
	if !found {
		return LineItemResponse{}, errs.NewObjectNotFoundError("line item", query.LineItemID().String())
	}

	return newLineItemResponse(item), nil
}
