package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a catalog entry.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sku         string
	description string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand requires a non-blank SKU. The description may be empty.
func NewCreateProductCommand(sku string, description string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard:       guard.NewConstructorGuard(),
		description: description,
	}

	if err := cmd.setSKU(sku); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) SKU() string {
	return c.sku
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if err := product.ValidateSKU(sku); err != nil {
		return err
	}

	c.sku = sku
	return nil
}
