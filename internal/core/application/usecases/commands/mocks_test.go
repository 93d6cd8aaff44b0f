package commands_test

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockFulfillmentRepository struct{ mock.Mock }

func (m *MockFulfillmentRepository) Create(ctx context.Context, t fulfillment.Type) (kernel.ID, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockFulfillmentRepository) SetStatus(ctx context.Context, id kernel.ID, target fulfillment.Status) error {
	args := m.Called(ctx, id, target)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Get(_ context.Context, _ kernel.ID) (*fulfillment.Fulfillment, bool, error) {
	panic("not used by commands")
}

func (m *MockFulfillmentRepository) CountByStatus(_ context.Context) (map[fulfillment.Status]int64, error) {
	panic("not used by commands")
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Create(
	ctx context.Context,
	fulfillmentID, productID kernel.ID,
	quantity int64,
) (kernel.ID, error) {
	args := m.Called(ctx, fulfillmentID, productID, quantity)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockLineItemRepository) Get(_ context.Context, _ kernel.ID) (*lineitem.LineItem, bool, error) {
	panic("not used by commands")
}

func (m *MockLineItemRepository) ListByFulfillment(_ context.Context, _ kernel.ID) ([]*lineitem.LineItem, error) {
	panic("not used by commands")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Create(ctx context.Context, sku string, description string) (kernel.ID, error) {
	args := m.Called(ctx, sku, description)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockProductRepository) Get(_ context.Context, _ kernel.ID) (*product.Product, error) {
	panic("not used by commands")
}

type MockRepoFactory struct{ mock.Mock }

func (m *MockRepoFactory) FulfillmentRepository() ports.FulfillmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentRepository)
}

func (m *MockRepoFactory) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockRepoFactory) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}
