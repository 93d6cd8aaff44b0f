// Package ports defines the storage contracts the application layer depends on.
// One concrete adapter may implement several of them; callers only see the
// capability they need.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// FulfillmentRepository owns fulfillment records.
//
// Implementations must be safe for concurrent use and must perform every
// mutation as a single atomic conditional write; no in-process lock is held
// across calls.
type FulfillmentRepository interface {
	// Create inserts a fulfillment of the given type in status New and returns
	// the identifier assigned by the store.
	// Store failures are reported as errs.ProviderFailureError.
	Create(ctx context.Context, fulfillmentType fulfillment.Type) (kernel.ID, error)

	// SetStatus moves the fulfillment into target if, at the instant of the write,
	// its current status is one of target.AllowedPredecessors().
	//
	// Outcomes:
	//   - one record affected: nil
	//   - no record affected: errs.BadInputError (unknown id or illegal transition,
	//     deliberately not distinguished)
	//   - more than one record affected: errs.ProviderFailureError
	SetStatus(ctx context.Context, id kernel.ID, target fulfillment.Status) error

	// Get reads one fulfillment. The second result is false when no record has id.
	Get(ctx context.Context, id kernel.ID) (*fulfillment.Fulfillment, bool, error)

	// CountByStatus returns how many fulfillments currently sit in each status.
	// Statuses with no fulfillments are present with a zero count.
	CountByStatus(ctx context.Context) (map[fulfillment.Status]int64, error)
}
