package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetFulfillmentQueryIsNotConstructed = errors.New(
	"GetFulfillmentQuery must be created via NewGetFulfillmentQuery constructor",
)

// GetFulfillmentQuery reads back one fulfillment.
//
// Example:
//
//	query, err := NewGetFulfillmentQuery(id)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such fulfillment
//	}
//	fmt.Printf("fulfillment %s is %s\n", resp.ID, resp.Status)
type GetFulfillmentQuery struct {
	fulfillmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetFulfillmentQuery(fulfillmentID kernel.ID) (GetFulfillmentQuery, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return GetFulfillmentQuery{}, err
	}
	return GetFulfillmentQuery{
		fulfillmentID: fulfillmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentQueryIsNotConstructed)
}

func (q GetFulfillmentQuery) FulfillmentID() kernel.ID {
	return q.fulfillmentID
}

// GetFulfillmentQueryResponse is a snapshot of a fulfillment.
type GetFulfillmentQueryResponse struct {
	ID     kernel.ID
	Type   fulfillment.Type
	Status fulfillment.Status
}
