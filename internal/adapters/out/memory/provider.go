// Package memory provides an in-process storage backend for tests and local
// runs. A single mutex stands in for the statement atomicity PostgreSQL gives
// the postgres adapter: every repository call evaluates its predicate and
// applies its write while holding the lock, and no lock is held between calls.
package memory

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/ports"
)

type fulfillmentRecord struct {
	id     int64
	kind   fulfillment.Type
	status fulfillment.Status
}

type lineItemRecord struct {
	id            int64
	fulfillmentID int64
	productID     int64
	quantity      int64
}

type productRecord struct {
	id          int64
	sku         string
	description string
}

type state struct {
	mu sync.RWMutex

	fulfillments map[int64]*fulfillmentRecord
	lineItems    map[int64]*lineItemRecord
	products     map[int64]*productRecord

	nextFulfillmentID int64
	nextLineItemID    int64
	nextProductID     int64
}

// Provider implements ports.Provider. The zero value is not usable; call NewProvider.
type Provider struct {
	state *state
}

var _ ports.Provider = (*Provider)(nil)

// NewProvider creates an empty store whose id sequences start at 1.
func NewProvider() *Provider {
	return &Provider{
		state: &state{
			fulfillments: make(map[int64]*fulfillmentRecord),
			lineItems:    make(map[int64]*lineItemRecord),
			products:     make(map[int64]*productRecord),
		},
	}
}

// Migrate is a no-op: the maps exist from construction.
func (p *Provider) Migrate(ctx context.Context) error {
	return ctx.Err()
}

func (p *Provider) FulfillmentRepository() ports.FulfillmentRepository {
	return &FulfillmentRepository{state: p.state}
}

func (p *Provider) LineItemRepository() ports.LineItemRepository {
	return &LineItemRepository{state: p.state}
}

func (p *Provider) ProductRepository() ports.ProductRepository {
	return &ProductRepository{state: p.state}
}
