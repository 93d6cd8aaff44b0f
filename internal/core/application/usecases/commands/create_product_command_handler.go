package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

type CreateProductCommandHandler struct {
	repoFactory ProductRepoFactory
}

func NewCreateProductCommandHandler(repoFactory ProductRepoFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		repoFactory: repoFactory,
	}
}

// Handle stores the product and returns its id.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	return h.repoFactory.ProductRepository().Create(ctx, cmd.SKU(), cmd.Description())
}
