package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLineItemQueryIsNotConstructed = errors.New(
	"GetLineItemQuery must be created via NewGetLineItemQuery constructor",
)

// GetLineItemQuery reads one line item by id.
type GetLineItemQuery struct {
	lineItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetLineItemQuery(lineItemID kernel.ID) (GetLineItemQuery, error) {
	if err := lineItemID.Validate(); err != nil {
		return GetLineItemQuery{}, err
	}
	return GetLineItemQuery{
		lineItemID: lineItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetLineItemQuery) Validate() error {
	return q.guard.Validate(ErrGetLineItemQueryIsNotConstructed)
}

func (q GetLineItemQuery) LineItemID() kernel.ID {
	return q.lineItemID
}

// LineItemResponse is a snapshot of a line item, shared by the line item queries.
type LineItemResponse struct {
	ID                kernel.ID
	FulfillmentID     kernel.ID
	ProductID         kernel.ID
	Quantity          int64
	QuantityFulfilled int64
}

func newLineItemResponse(item *lineitem.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                item.ID(),
		FulfillmentID:     item.FulfillmentID(),
		ProductID:         item.ProductID(),
		Quantity:          item.Quantity(),
		QuantityFulfilled: item.QuantityFulfilled(),
	}
}
