package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

type GetProductQueryHandler struct {
	repo ports.ProductRepository
}

func NewGetProductQueryHandler(repo ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{repo: repo}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	p, err := h.repo.Get(ctx, query.ProductID())
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	return GetProductQueryResponse{
		ID:          p.ID(),
		SKU:         p.SKU(),
		Description: p.Description(),
	}, nil
}
