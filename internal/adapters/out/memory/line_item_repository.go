package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/errs"
)

// LineItemRepository implements ports.LineItemRepository in memory.
type LineItemRepository struct {
	state *state
}

// Create checks admission and inserts under the same write lock as SetStatus,
// so an insert never lands after a transition out of New.
func (r *LineItemRepository) Create(
	ctx context.Context,
	fulfillmentID, productID kernel.ID,
	quantity int64,
) (kernel.ID, error) {
	if err := errors.Join(
		fulfillmentID.Validate(),
		productID.Validate(),
		lineitem.ValidateQuantity(quantity),
	); err != nil {
		return kernel.ID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create line item", err)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	parent, ok := r.state.fulfillments[fulfillmentID.Int64()]
	if !ok || !parent.status.AcceptsLineItems() {
		return kernel.ID{}, errs.NewBadInputError(
			fmt.Sprintf("can't add line item to fulfillment %s", fulfillmentID),
		)
	}

	r.state.nextLineItemID++
	record := &lineItemRecord{
		id:            r.state.nextLineItemID,
		fulfillmentID: fulfillmentID.Int64(),
		productID:     productID.Int64(),
		quantity:      quantity,
	}
	r.state.lineItems[record.id] = record

	return kernel.NewID(record.id)
}

func (r *LineItemRepository) Get(ctx context.Context, id kernel.ID) (*lineitem.LineItem, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get line item", err)
	}

	r.state.mu.RLock()
	record, ok := r.state.lineItems[id.Int64()]
	var snapshot lineItemRecord
	if ok {
		snapshot = *record
	}
	r.state.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	item, err := toLineItem(snapshot)
	if err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get line item", err)
	}
	return item, true, nil
}

func (r *LineItemRepository) ListByFulfillment(
	ctx context.Context,
	fulfillmentID kernel.ID,
) ([]*lineitem.LineItem, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("list line items", err)
	}

	r.state.mu.RLock()
	snapshots := make([]lineItemRecord, 0)
	for _, record := range r.state.lineItems {
		if record.fulfillmentID == fulfillmentID.Int64() {
			snapshots = append(snapshots, *record)
		}
	}
	r.state.mu.RUnlock()

	slices.SortFunc(snapshots, func(a, b lineItemRecord) int {
		return cmp.Compare(a.id, b.id)
	})

	items := make([]*lineitem.LineItem, 0, len(snapshots))
	for _, snapshot := range snapshots {
		item, err := toLineItem(snapshot)
		if err != nil {
			return nil, errs.NewProviderFailureErrorWithCause("list line items", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func toLineItem(record lineItemRecord) (*lineitem.LineItem, error) {
	id, err := kernel.NewID(record.id)
	if err != nil {
		return nil, err
	}
	fulfillmentID, err := kernel.NewID(record.fulfillmentID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.NewID(record.productID)
	if err != nil {
		return nil, err
	}
	return lineitem.RestoreLineItem(id, fulfillmentID, productID, record.quantity, 0)
}
