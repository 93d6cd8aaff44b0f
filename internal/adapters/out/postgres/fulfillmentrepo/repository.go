package fulfillmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// setStatusSQL moves a fulfillment only when its current status is one of the
// bound predecessor names. The predicate and the update are one statement, so
// the status value itself acts as the optimistic-concurrency token.
const setStatusSQL = `
	UPDATE fulfillments
	SET status = ?
	WHERE id = ?
	AND status = ANY(?)
`

// GormFulfillmentRepository implements ports.FulfillmentRepository using GORM.
// It holds no mutable state besides the connection pool and is safe to share
// between goroutines.
type GormFulfillmentRepository struct {
	db *gorm.DB
}

// NewGormFulfillmentRepository creates a new GORM fulfillment repository.
func NewGormFulfillmentRepository(db *gorm.DB) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{db: db}
}

// Create inserts a new fulfillment in status New.
func (r *GormFulfillmentRepository) Create(ctx context.Context, fulfillmentType fulfillment.Type) (kernel.ID, error) {
	if err := fulfillmentType.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := FulfillmentDTO{
		Status: fulfillment.New.String(),
		Type:   fulfillmentType.String(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create fulfillment", err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create fulfillment", err)
	}
	return id, nil
}

// SetStatus performs the conditional transition and interprets the affected row count.
func (r *GormFulfillmentRepository) SetStatus(ctx context.Context, id kernel.ID, target fulfillment.Status) error {
	if err := errors.Join(id.Validate(), target.Validate()); err != nil {
		return err
	}

	predecessors := target.AllowedPredecessors()
	names := make(pq.StringArray, 0, len(predecessors))
	for _, s := range predecessors {
		names = append(names, s.String())
	}

	result := r.db.WithContext(ctx).Exec(setStatusSQL, target.String(), id.Int64(), names)
	if result.Error != nil {
		return errs.NewProviderFailureErrorWithCause("set fulfillment status", result.Error)
	}

	switch result.RowsAffected {
	case 1:
		return nil
	case 0:
		return errs.NewBadInputErrorWithCause(
			"bad fulfillment status transition",
			fmt.Errorf("fulfillment %s cannot move to %s", id, target),
		)
	default:
		return errs.NewProviderFailureError(
			fmt.Sprintf("%d rows affected, expected 1 or 0", result.RowsAffected),
		)
	}
}

// Get retrieves a fulfillment by ID.
func (r *GormFulfillmentRepository) Get(ctx context.Context, id kernel.ID) (*fulfillment.Fulfillment, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dto FulfillmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.NewProviderFailureErrorWithCause("get fulfillment", err)
	}

	f, err := toDomain(dto)
	if err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get fulfillment", err)
	}
	return f, true, nil
}

// CountByStatus groups fulfillments by status.
func (r *GormFulfillmentRepository) CountByStatus(ctx context.Context) (map[fulfillment.Status]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Model(&FulfillmentDTO{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("count fulfillments", err)
	}

	counts := make(map[fulfillment.Status]int64, len(fulfillment.Statuses()))
	for _, s := range fulfillment.Statuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		status, parseErr := fulfillment.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, errs.NewProviderFailureErrorWithCause("count fulfillments", parseErr)
		}
		counts[status] = row.Count
	}
	return counts, nil
}
