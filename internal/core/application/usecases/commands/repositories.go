// Package commands contains business operations that modify system state.
// Every command handler validates its command and then issues exactly one
// repository call. There is no transaction around it: the repository performs
// the whole mutation as a single conditional write.
package commands

import "fulfillment/internal/core/ports"

// Repository factories give handlers access to the store they write to.
// ports.Provider satisfies all of them.
type (
	// FulfillmentRepoFactory provides access to the fulfillment store.
	FulfillmentRepoFactory interface {
		FulfillmentRepository() ports.FulfillmentRepository
	}

	// LineItemRepoFactory provides access to the line item store.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// ProductRepoFactory provides access to the product catalog.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}
)
