// Package portstest holds a behavioural test suite that every ports.Provider
// implementation runs against its own backend.
package portstest

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// ProviderSuite checks the lifecycle and admission rules through the ports
// interfaces only. Embed it and set NewProvider.
type ProviderSuite struct {
	suite.Suite

	// NewProvider returns a provider over empty storage whose id sequences
	// start at 1. It is called before every test.
	NewProvider func() ports.Provider

	provider ports.Provider
}

func (s *ProviderSuite) SetupTest() {
	s.Require().NotNil(s.NewProvider, "NewProvider must be set")
	s.provider = s.NewProvider()
	s.Require().NoError(s.provider.Migrate(context.Background()))
}

// Provider returns the provider of the current test.
func (s *ProviderSuite) Provider() ports.Provider {
	return s.provider
}

func (s *ProviderSuite) TestMigrate_IsIdempotent() {
	s.Require().NoError(s.provider.Migrate(context.Background()))
}

func (s *ProviderSuite) TestLifecycleScenario() {
	ctx := context.Background()
	fulfillments := s.provider.FulfillmentRepository()
	lineItems := s.provider.LineItemRepository()

	fulfillmentID, err := fulfillments.Create(ctx, fulfillment.StockPickUp)
	s.Require().NoError(err)
	s.Equal(int64(1), fulfillmentID.Int64())
	s.assertStatus(fulfillmentID, fulfillment.New)

	lineItemID, err := lineItems.Create(ctx, fulfillmentID, s.id(7), 3)
	s.Require().NoError(err)
	s.Equal(int64(1), lineItemID.Int64())
	item, found, err := lineItems.Get(ctx, lineItemID)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(int64(3), item.Quantity())
	s.Equal(int64(0), item.QuantityFulfilled())

	s.Require().NoError(fulfillments.SetStatus(ctx, fulfillmentID, fulfillment.Initialized))

	_, err = lineItems.Create(ctx, fulfillmentID, s.id(7), 1)
	s.Require().ErrorIs(err, errs.ErrBadInput)

	err = fulfillments.SetStatus(ctx, fulfillmentID, fulfillment.Fulfilled)
	s.Require().ErrorIs(err, errs.ErrBadInput)
	s.assertStatus(fulfillmentID, fulfillment.Initialized)

	s.Require().NoError(fulfillments.SetStatus(ctx, fulfillmentID, fulfillment.InProgress))
	s.Require().NoError(fulfillments.SetStatus(ctx, fulfillmentID, fulfillment.Fulfilled))
	s.assertStatus(fulfillmentID, fulfillment.Fulfilled)

	items, err := lineItems.ListByFulfillment(ctx, fulfillmentID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.True(items[0].ID().IsEqual(lineItemID))
}

func (s *ProviderSuite) TestSetStatus_MatchesPredecessorTable() {
	ctx := context.Background()
	fulfillments := s.provider.FulfillmentRepository()

	for _, from := range fulfillment.Statuses() {
		for _, to := range fulfillment.Statuses() {
			id := s.createInStatus(from)

			err := fulfillments.SetStatus(ctx, id, to)

			if to.CanFollow(from) {
				s.Require().NoError(err, "%s -> %s", from, to)
				s.assertStatus(id, to)
			} else {
				s.Require().ErrorIs(err, errs.ErrBadInput, "%s -> %s", from, to)
				s.assertStatus(id, from)
			}
		}
	}
}

func (s *ProviderSuite) TestSetStatus_UnknownIDIsBadInput() {
	err := s.provider.FulfillmentRepository().SetStatus(context.Background(), s.id(1000), fulfillment.Initialized)

	s.Require().ErrorIs(err, errs.ErrBadInput)
}

func (s *ProviderSuite) TestSetStatus_ConcurrentContendersHaveOneWinner() {
	ctx := context.Background()
	fulfillments := s.provider.FulfillmentRepository()

	for _, target := range []fulfillment.Status{fulfillment.Initialized, fulfillment.InProgress, fulfillment.Fulfilled} {
		id := s.createInStatus(target.AllowedPredecessors()[0])

		const contenders = 12
		results := make(chan error, contenders)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				results <- fulfillments.SetStatus(ctx, id, target)
			}()
		}
		close(start)
		wg.Wait()
		close(results)

		winners := 0
		for err := range results {
			if err == nil {
				winners++
				continue
			}
			s.Require().ErrorIs(err, errs.ErrBadInput)
		}
		s.Equal(1, winners, "target %s", target)
		s.assertStatus(id, target)
	}
}

func (s *ProviderSuite) TestLineItemAdmission() {
	ctx := context.Background()
	lineItems := s.provider.LineItemRepository()

	_, err := lineItems.Create(ctx, s.id(77), s.id(1), 1)
	s.Require().ErrorIs(err, errs.ErrBadInput)

	for _, status := range fulfillment.Statuses() {
		id := s.createInStatus(status)

		_, err = lineItems.Create(ctx, id, s.id(1), 2)

		if status.AcceptsLineItems() {
			s.Require().NoError(err, status.String())
		} else {
			s.Require().ErrorIs(err, errs.ErrBadInput, status.String())
		}
	}
}

func (s *ProviderSuite) TestListByFulfillment_AscendingAndEmpty() {
	ctx := context.Background()
	lineItems := s.provider.LineItemRepository()
	withItems := s.createInStatus(fulfillment.New)
	withoutItems := s.createInStatus(fulfillment.New)

	var created []kernel.ID
	for quantity := int64(1); quantity <= 4; quantity++ {
		id, err := lineItems.Create(ctx, withItems, s.id(quantity), quantity)
		s.Require().NoError(err)
		created = append(created, id)
	}

	items, err := lineItems.ListByFulfillment(ctx, withItems)
	s.Require().NoError(err)
	s.Require().Len(items, len(created))
	for i := range items {
		s.True(items[i].ID().IsEqual(created[i]))
		if i > 0 {
			s.True(items[i-1].ID().Less(items[i].ID()))
		}
	}

	empty, err := lineItems.ListByFulfillment(ctx, withoutItems)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *ProviderSuite) TestLineItemGet_AbsentIsNotAnError() {
	item, found, err := s.provider.LineItemRepository().Get(context.Background(), s.id(5))

	s.Require().NoError(err)
	s.False(found)
	s.Nil(item)
}

func (s *ProviderSuite) TestCountByStatus() {
	s.createInStatus(fulfillment.New)
	s.createInStatus(fulfillment.Fulfilled)
	s.createInStatus(fulfillment.Fulfilled)

	counts, err := s.provider.FulfillmentRepository().CountByStatus(context.Background())

	s.Require().NoError(err)
	s.Equal(int64(1), counts[fulfillment.New])
	s.Equal(int64(0), counts[fulfillment.Initialized])
	s.Equal(int64(0), counts[fulfillment.InProgress])
	s.Equal(int64(2), counts[fulfillment.Fulfilled])
}

func (s *ProviderSuite) TestProducts() {
	ctx := context.Background()
	products := s.provider.ProductRepository()

	id, err := products.Create(ctx, "SKU-1", "first")
	s.Require().NoError(err)

	p, err := products.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("SKU-1", p.SKU())
	s.Equal("first", p.Description())

	_, err = products.Get(ctx, s.id(id.Int64()+1))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ProviderSuite) createInStatus(status fulfillment.Status) kernel.ID {
	ctx := context.Background()
	fulfillments := s.provider.FulfillmentRepository()

	id, err := fulfillments.Create(ctx, fulfillment.StockDelivery)
	s.Require().NoError(err)
	for _, next := range fulfillment.Statuses() {
		if next == fulfillment.New || next > status {
			continue
		}
		s.Require().NoError(fulfillments.SetStatus(ctx, id, next))
	}
	return id
}

func (s *ProviderSuite) assertStatus(id kernel.ID, expected fulfillment.Status) {
	f, found, err := s.provider.FulfillmentRepository().Get(context.Background(), id)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(expected, f.Status())
}

func (s *ProviderSuite) id(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	s.Require().NoError(err)
	return id
}
