// Package product provides the Product entity. Products are a catalog
// collaborator: line items reference them by id, and nothing in the
// fulfillment lifecycle depends on their contents.
package product

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created through RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")

// Product is a catalog entry.
type Product struct {
	id          kernel.ID
	sku         string
	description string

	isConstructed bool
}

// ValidateSKU rejects blank stock keeping units.
func ValidateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	return nil
}

// RestoreProduct rebuilds a Product from persisted values.
func RestoreProduct(id kernel.ID, sku string, description string) (*Product, error) {
	if err := errors.Join(id.Validate(), ValidateSKU(sku)); err != nil {
		return nil, err
	}
	return &Product{
		id:            id,
		sku:           sku,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was built through RestoreProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Description() string {
	return p.description
}
