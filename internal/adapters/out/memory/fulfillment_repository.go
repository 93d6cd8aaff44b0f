package memory

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// FulfillmentRepository implements ports.FulfillmentRepository in memory.
type FulfillmentRepository struct {
	state *state
}

func (r *FulfillmentRepository) Create(ctx context.Context, fulfillmentType fulfillment.Type) (kernel.ID, error) {
	if err := fulfillmentType.Validate(); err != nil {
		return kernel.ID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create fulfillment", err)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	r.state.nextFulfillmentID++
	record := &fulfillmentRecord{
		id:     r.state.nextFulfillmentID,
		kind:   fulfillmentType,
		status: fulfillment.New,
	}
	r.state.fulfillments[record.id] = record

	return kernel.NewID(record.id)
}

// SetStatus compares and swaps the status under the write lock.
func (r *FulfillmentRepository) SetStatus(ctx context.Context, id kernel.ID, target fulfillment.Status) error {
	if err := errors.Join(id.Validate(), target.Validate()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewProviderFailureErrorWithCause("set fulfillment status", err)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	record, ok := r.state.fulfillments[id.Int64()]
	if !ok || !target.CanFollow(record.status) {
		return errs.NewBadInputErrorWithCause(
			"bad fulfillment status transition",
			fmt.Errorf("fulfillment %s cannot move to %s", id, target),
		)
	}
	record.status = target
	return nil
}

func (r *FulfillmentRepository) Get(ctx context.Context, id kernel.ID) (*fulfillment.Fulfillment, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get fulfillment", err)
	}

	r.state.mu.RLock()
	record, ok := r.state.fulfillments[id.Int64()]
	var snapshot fulfillmentRecord
	if ok {
		snapshot = *record
	}
	r.state.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	f, err := fulfillment.RestoreFulfillment(id, snapshot.kind, snapshot.status)
	if err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get fulfillment", err)
	}
	return f, true, nil
}

func (r *FulfillmentRepository) CountByStatus(ctx context.Context) (map[fulfillment.Status]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("count fulfillments", err)
	}

	counts := make(map[fulfillment.Status]int64, len(fulfillment.Statuses()))
	for _, s := range fulfillment.Statuses() {
		counts[s] = 0
	}

	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	for _, record := range r.state.fulfillments {
		counts[record.status]++
	}
	return counts, nil
}
