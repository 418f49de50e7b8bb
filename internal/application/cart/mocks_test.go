package cart

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindLines(ctx context.Context, sessionID string) ([]cart.Line, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Line), args.Error(1)
}

func (m *MockCartRepository) FindMatching(ctx context.Context, sessionID string, productID, serviceID *int64, itemType cart.ItemType) (*cart.Item, error) {
	args := m.Called(ctx, sessionID, productID, serviceID, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *cart.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) AddQuantity(ctx context.Context, id int64, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, sessionID string, id int64, quantity int) error {
	return m.Called(ctx, sessionID, id, quantity).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID string, id int64) error {
	return m.Called(ctx, sessionID, id).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// MockProductRepository mocks the product lookups the cart needs
type MockProductRepository struct {
	mock.Mock
	catalog.ProductRepository
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// MockServiceRepository mocks the service lookups the cart needs
type MockServiceRepository struct {
	mock.Mock
	catalog.ServiceRepository
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id int64) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}
