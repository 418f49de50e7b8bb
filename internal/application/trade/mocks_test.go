package trade

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PlaceOrder(ctx context.Context, order *trade.Order, sessionID string) error {
	args := m.Called(ctx, order, sessionID)
	if args.Error(0) == nil {
		order.ID = 100
	}
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]trade.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindDetailForCustomer(ctx context.Context, customerID, id int64) (*trade.OrderDetail, error) {
	args := m.Called(ctx, customerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) FindAllWithCustomer(ctx context.Context, limit int) ([]trade.OrderSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.OrderSummary), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status trade.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockWalkInSaleRepository is a mock implementation of trade.WalkInSaleRepository
type MockWalkInSaleRepository struct {
	mock.Mock
}

func (m *MockWalkInSaleRepository) Create(ctx context.Context, sale *trade.WalkInSale) error {
	args := m.Called(ctx, sale)
	if args.Error(0) == nil {
		sale.ID = 50
	}
	return args.Error(0)
}

func (m *MockWalkInSaleRepository) ExistsBySaleNumber(ctx context.Context, saleNumber string) (bool, error) {
	args := m.Called(ctx, saleNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalkInSaleRepository) FindAllWithAdmin(ctx context.Context) ([]trade.WalkInSaleSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.WalkInSaleSummary), args.Error(1)
}

func (m *MockWalkInSaleRepository) FindDetail(ctx context.Context, id int64) (*trade.WalkInSaleDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.WalkInSaleDetail), args.Error(1)
}

// MockCartRepository mocks the cart reads checkout needs
type MockCartRepository struct {
	mock.Mock
	cart.Repository
}

func (m *MockCartRepository) FindLines(ctx context.Context, sessionID string) ([]cart.Line, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Line), args.Error(1)
}

// MockUserRepository mocks the user lookups checkout needs
type MockUserRepository struct {
	mock.Mock
	identity.UserRepository
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

// MockProductRepository mocks the product lookups walk-in sales need
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
