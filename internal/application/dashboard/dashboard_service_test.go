package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProducts struct {
	mock.Mock
	catalog.ProductRepository
}

func (m *mockProducts) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProducts) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

type mockOrders struct {
	mock.Mock
	trade.OrderRepository
}

func (m *mockOrders) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrders) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockOrders) FindAllWithCustomer(ctx context.Context, limit int) ([]trade.OrderSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]trade.OrderSummary), args.Error(1)
}

type mockUsers struct {
	mock.Mock
	identity.UserRepository
}

func (m *mockUsers) CountByRole(ctx context.Context, role identity.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Get(t *testing.T) {
	products := new(mockProducts)
	orders := new(mockOrders)
	users := new(mockUsers)
	products.On("Count", mock.Anything).Return(int64(10), nil)
	orders.On("Count", mock.Anything).Return(int64(3), nil)
	users.On("CountByRole", mock.Anything, identity.RoleCustomer).Return(int64(5), nil)
	orders.On("CompletedRevenue", mock.Anything).Return(decimal.Zero, nil)
	orders.On("FindAllWithCustomer", mock.Anything, RecentOrdersLimit).Return([]trade.OrderSummary{
		{Order: trade.Order{ID: 3, Status: trade.OrderStatusPending}, CustomerFirstName: "Ana", CustomerLastName: "Cruz"},
	}, nil)
	products.On("FindLowStock", mock.Anything, 10).Return([]catalog.Product{
		{Name: "Racing Wheels", StockQuantity: 8},
	}, nil)

	resp, err := NewService(products, orders, users, nil, 0).Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.TotalProducts)
	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.Equal(t, int64(5), resp.TotalCustomers)
	assert.True(t, resp.TotalRevenue.IsZero())
	require.Len(t, resp.RecentOrders, 1)
	assert.Equal(t, "Ana Cruz", resp.RecentOrders[0].CustomerName)
	require.Len(t, resp.LowStockProducts, 1)
	assert.Equal(t, 10, resp.LowStockThreshold)
}

func TestService_Get_Error(t *testing.T) {
	products := new(mockProducts)
	products.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := NewService(products, new(mockOrders), new(mockUsers), nil, 5).Get(context.Background())

	assert.EqualError(t, err, "db down")
}
