package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var ErrGetFulfillmentStatusSummaryQueryIsNotConstructed = errors.New(
	"GetFulfillmentStatusSummaryQuery must be created via NewGetFulfillmentStatusSummaryQuery constructor",
)

// GetFulfillmentStatusSummaryQuery counts fulfillments per status.
// This is a parameterless query used by the status report job.
type GetFulfillmentStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFulfillmentStatusSummaryQuery() GetFulfillmentStatusSummaryQuery {
	return GetFulfillmentStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFulfillmentStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentStatusSummaryQueryIsNotConstructed)
}

// StatusCount is the number of fulfillments sitting in one status.
type StatusCount struct {
	Status fulfillment.Status
	Count  int64
}

// GetFulfillmentStatusSummaryQueryResponse lists every status in lifecycle
// order, including those with a zero count.
type GetFulfillmentStatusSummaryQueryResponse struct {
	Counts []StatusCount
	Total  int64
}
