// Package productrepo persists the product catalog with GORM.
package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProductDTO is the row layout of the products table.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SKU         string `gorm:"column:sku;type:text;not null"`
	Description string `gorm:"type:text;not null"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create saves a new product.
func (r *GormProductRepository) Create(ctx context.Context, sku string, description string) (kernel.ID, error) {
	if err := product.ValidateSKU(sku); err != nil {
		return kernel.ID{}, err
	}

	dto := ProductDTO{SKU: sku, Description: description}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create product", err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return kernel.ID{}, errs.NewProviderFailureErrorWithCause("create product", err)
	}
	return id, nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, errs.NewProviderFailureErrorWithCause("get product", err)
	}

	productID, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("get product", err)
	}
	p, err := product.RestoreProduct(productID, dto.SKU, dto.Description)
	if err != nil {
		return nil, errs.NewProviderFailureErrorWithCause("get product", err)
	}
	return p, nil
}
