package ports

import "context"

// Provider is a storage backend that serves every repository of the service
// from one shared connection pool.
type Provider interface {
	// Migrate creates the tables the repositories need. It is idempotent.
	Migrate(ctx context.Context) error

	FulfillmentRepository() FulfillmentRepository
	LineItemRepository() LineItemRepository
	ProductRepository() ProductRepository
}
