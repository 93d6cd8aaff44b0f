package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLineItemsByFulfillmentQueryIsNotConstructed = errors.New(
	"GetLineItemsByFulfillmentQuery must be created via NewGetLineItemsByFulfillmentQuery constructor",
)

// GetLineItemsByFulfillmentQuery lists the line items of a fulfillment in
// creation order. An unknown fulfillment yields an empty list.
type GetLineItemsByFulfillmentQuery struct {
	fulfillmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetLineItemsByFulfillmentQuery(fulfillmentID kernel.ID) (GetLineItemsByFulfillmentQuery, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return GetLineItemsByFulfillmentQuery{}, err
	}
	return GetLineItemsByFulfillmentQuery{
		fulfillmentID: fulfillmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetLineItemsByFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetLineItemsByFulfillmentQueryIsNotConstructed)
}

func (q GetLineItemsByFulfillmentQuery) FulfillmentID() kernel.ID {
	return q.fulfillmentID
}
