package memory

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// ProductRepository implements ports.ProductRepository in memory.
type ProductRepository struct {
	state *state
}

func (r *ProductRepository) Create(ctx context.Context, sku string, description string) (kernel.ID, error) {
	if err := product.ValidateSKU(sku); err != nil {
		return kernel.ID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create product", err)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	r.state.nextProductID++
	record := &productRecord{id: r.state.nextProductID, sku: sku, description: description}
	r.state.products[record.id] = record

	return kernel.NewID(record.id)
}

func (r *ProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("get product", err)
	}

	r.state.mu.RLock()
	record, ok := r.state.products[id.Int64()]
	var snapshot productRecord
	if ok {
		snapshot = *record
	}
	r.state.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	p, err := product.RestoreProduct(id, snapshot.sku, snapshot.description)
	if err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("get product", err)
	}
	return p, nil
}
