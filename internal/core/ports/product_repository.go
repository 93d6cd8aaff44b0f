package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository owns the product catalog.
type ProductRepository interface {
	// Create inserts a product and returns its identifier.
	Create(ctx context.Context, sku string, description string) (kernel.ID, error)

	// Get reads one product. Returns errs.ObjectNotFoundError when no record has id.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
}
