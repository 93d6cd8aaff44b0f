package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/ports"
)

type GetFulfillmentStatusSummaryQueryHandler struct {
	repo ports.FulfillmentRepository
}

func NewGetFulfillmentStatusSummaryQueryHandler(
	repo ports.FulfillmentRepository,
) GetFulfillmentStatusSummaryQueryHandler {
	return GetFulfillmentStatusSummaryQueryHandler{repo: repo}
}

func (h GetFulfillmentStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentStatusSummaryQuery,
) (GetFulfillmentStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentStatusSummaryQueryResponse{}, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return GetFulfillmentStatusSummaryQueryResponse{}, err
	}

	var resp GetFulfillmentStatusSummaryQueryResponse
	for _, status := range fulfillment.Statuses() {
		resp.Counts = append(resp.Counts, StatusCount{Status: status, Count: counts[status]})
		resp.Total += counts[status]
	}
	return resp, nil
}
