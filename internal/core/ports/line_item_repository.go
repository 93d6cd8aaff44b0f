package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
)

// LineItemRepository owns line item records.
type LineItemRepository interface {
	// Create inserts a line item with QuantityFulfilled 0, but only if a
	// fulfillment with fulfillmentID exists and is New at the instant of the
	// insert. The check and the insert are one statement.
	// A refused admission is reported as errs.BadInputError; the caller cannot
	// tell a missing fulfillment from one that has moved past New.
	Create(ctx context.Context, fulfillmentID, productID kernel.ID, quantity int64) (kernel.ID, error)

	// Get reads one line item. The second result is false when no record has id.
	Get(ctx context.Context, id kernel.ID) (*lineitem.LineItem, bool, error)

	// ListByFulfillment returns every line item of the fulfillment in ascending
	// id order. It returns an empty slice, not an error, when there are none.
	ListByFulfillment(ctx context.Context, fulfillmentID kernel.ID) ([]*lineitem.LineItem, error)
}
