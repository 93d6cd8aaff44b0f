// Package lineitemrepo persists line items with GORM. Creation is admitted by
// a single conditional INSERT; see GormLineItemRepository.Create.
package lineitemrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
)

// LineItemDTO is the row layout of the line_items table.
// quantity_fulfilled has no writer yet and is not stored; it reads back as 0.
type LineItemDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	FulfillmentID int64 `gorm:"not null;index"`
	ProductID     int64 `gorm:"not null"`
	Quantity      int64 `gorm:"type:integer;not null"`
}

// TableName overrides GORM's default naming convention.
func (LineItemDTO) TableName() string {
	return "line_items"
}

func toDomain(dto LineItemDTO) (*lineitem.LineItem, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	fulfillmentID, err := kernel.NewID(dto.FulfillmentID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	return lineitem.RestoreLineItem(id, fulfillmentID, productID, dto.Quantity, 0)
}
