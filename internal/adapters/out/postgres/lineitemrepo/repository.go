package lineitemrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// insertLineItemSQL inserts only while the referenced fulfillment exists in the
// admitting status. FOR SHARE holds the fulfillment row until the insert
// commits, so a concurrent transition either waits for it or is seen by it.
const insertLineItemSQL = `
	INSERT INTO line_items (fulfillment_id, product_id, quantity)
	SELECT CAST(? AS bigint), CAST(? AS bigint), CAST(? AS integer)
	WHERE EXISTS (
		SELECT 1
		FROM fulfillments
		WHERE id = ? AND status = ?
		FOR SHARE
	)
	RETURNING id
`

// GormLineItemRepository implements ports.LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// Create runs the admission-gated insert. Zero returned ids means the
// fulfillment is missing or no longer New.
func (r *GormLineItemRepository) Create(
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

	rows, err := r.db.WithContext(ctx).Raw(
		insertLineItemSQL,
		fulfillmentID.Int64(),
		productID.Int64(),
		quantity,
		fulfillmentID.Int64(),
		fulfillment.New.String(),
	).Rows()
	if err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create line item", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 1)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create line item", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create line item", err)
	}

	switch len(ids) {
	case 1:
		id, idErr := kernel.NewID(ids[0])
		if idErr != nil {
			return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create line item", idErr)
		}
		return id, nil
	case 0:
		return kernel.ID{}, errs.NewBadInputError(
			fmt.Sprintf("can't add line item to fulfillment %s", fulfillmentID),
		)
	default:
		return kernel.ID{}, errs.NewProviderFailureError(
			fmt.Sprintf("%d rows affected, expected 1 or 0", len(ids)),
		)
	}
}

// Get retrieves a line item by ID.
func (r *GormLineItemRepository) Get(ctx context.Context, id kernel.ID) (*lineitem.LineItem, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dto LineItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.NewProviderFailureErrorWithCause("get line item", err)
	}

	item, err := toDomain(dto)
	if err != nil {
		return nil, false, errs.NewProviderFailureErrorWithCause("get line item", err)
	}
	return item, true, nil
}

// ListByFulfillment retrieves every line item of a fulfillment, oldest first.
func (r *GormLineItemRepository) ListByFulfillment(
	ctx context.Context,
	fulfillmentID kernel.ID,
) ([]*lineitem.LineItem, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Where("fulfillment_id = ?", fulfillmentID.Int64()).
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("list line items", err)
	}

	items := make([]*lineitem.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, errs.NewProviderFailureErrorWithCause("list line items", convErr)
		}
		items = append(items, item)
	}
	return items, nil
}
