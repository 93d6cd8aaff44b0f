// Package fulfillmentrepo persists fulfillments with GORM. Status transitions
// are single conditional UPDATE statements; see GormFulfillmentRepository.SetStatus.
package fulfillmentrepo

import (
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// FulfillmentDTO is the row layout of the fulfillments table.
// Status and type are stored by name.
type FulfillmentDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Status string `gorm:"type:text;not null;index"`
	Type   string `gorm:"type:text;not null"`
}

// TableName overrides GORM's default naming convention.
func (FulfillmentDTO) TableName() string {
	return "fulfillments"
}

// statusCountRow is the result row of the per-status census.
type statusCountRow struct {
	Status string
	Count  int64
}

func toDomain(dto FulfillmentDTO) (*fulfillment.Fulfillment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := fulfillment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	fulfillmentType, err := fulfillment.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return fulfillment.RestoreFulfillment(id, fulfillmentType, status)
}
