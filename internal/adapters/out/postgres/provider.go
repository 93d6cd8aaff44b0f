// Package postgres provides the GORM-backed storage adapter of the service.
//
// GormProvider is the single concrete backend: it hands out the fulfillment,
// line item and product repositories, all sharing one *gorm.DB connection pool.
// None of the repositories opens a transaction. Every mutation is one
// conditional statement whose predicate carries the business rule:
//
//	UPDATE fulfillments SET status = $target
//	WHERE id = $id AND status = ANY($allowed_predecessors)
//
//	INSERT INTO line_items (...) SELECT ...
//	WHERE EXISTS (SELECT 1 FROM fulfillments WHERE id = $id AND status = 'New' FOR SHARE)
//
// PostgreSQL serializes concurrent writes to the same row and re-checks the
// predicate against the committed version, so at most one contender wins
// each transition, and an admission never interleaves with a transition.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	provider := NewGormProvider(db)
//	if err := provider.Migrate(ctx); err != nil {
//	    return err
//	}
//	id, err := provider.FulfillmentRepository().Create(ctx, fulfillment.StockPickUp)
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/fulfillmentrepo"
	"fulfillment/internal/adapters/out/postgres/lineitemrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProvider implements ports.Provider on top of a GORM connection pool.
type GormProvider struct {
	db *gorm.DB
}

// NewGormProvider creates a provider for the given database connection.
func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

// Migrate creates or updates the fulfillments, line_items and products tables.
func (p *GormProvider) Migrate(ctx context.Context) error {
	err := p.db.WithContext(ctx).AutoMigrate(
		&fulfillmentrepo.FulfillmentDTO{},
		&lineitemrepo.LineItemDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		return errs.NewProviderFailureErrorWithCause("migrate schema", err)
	}
	return nil
}

// FulfillmentRepository returns the fulfillment store.
func (p *GormProvider) FulfillmentRepository() ports.FulfillmentRepository {
	return fulfillmentrepo.NewGormFulfillmentRepository(p.db)
}

// LineItemRepository returns the line item store.
func (p *GormProvider) LineItemRepository() ports.LineItemRepository {
	return lineitemrepo.NewGormLineItemRepository(p.db)
}

// ProductRepository returns the product catalog.
func (p *GormProvider) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(p.db)
}
