package trade

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleLines() []cart.Line {
	return []cart.Line{
		{
			Item:         cart.Item{ID: 1, SessionID: "7", ProductID: int64Ptr(3), Quantity: 2, ItemType: cart.ItemTypeProduct},
			ProductName:  "Racing Exhaust",
			ProductPrice: decPtr("899.99"),
		},
		{
			Item:         cart.Item{ID: 2, SessionID: "7", ServiceID: int64Ptr(4), Quantity: 1, ItemType: cart.ItemTypeService},
			ServiceName:  "Engine Tuning",
			ServicePrice: decPtr("150.00"),
		},
	}
}

func TestNewOrderFromCart(t *testing.T) {
	order, err := NewOrderFromCart(7, "TECH13-20240601-1234", sampleLines(), Delivery{
		Address: " 12 Main St ",
		Phone:   "555-0101",
		Notes:   "leave at the gate",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), order.CustomerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, "12 Main St", order.DeliveryAddress)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("1949.98")))
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("899.99")))
	assert.Equal(t, cart.ItemTypeService, order.Items[1].ItemType)

	products := order.ProductItems()
	require.Len(t, products, 1)
	assert.Equal(t, int64(3), *products[0].ProductID)
	assert.True(t, products[0].Subtotal().Equal(decimal.RequireFromString("1799.98")))
}

func TestNewOrderFromCart_Empty(t *testing.T) {
	_, err := NewOrderFromCart(7, "TECH13-20240601-1234", nil, Delivery{})
	assert.True(t, errors.Is(err, ErrEmptyCart))
	assert.EqualError(t, err, "Your cart is empty")
}

func TestNewOrderFromCart_UnpricedLineCountsAsZero(t *testing.T) {
	lines := []cart.Line{{Item: cart.Item{ProductID: int64Ptr(9), Quantity: 3, ItemType: cart.ItemTypeProduct}}}
	order, err := NewOrderFromCart(1, "TECH13-20240601-1000", lines, Delivery{})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.IsZero())
}

func TestOrder_SetStatus(t *testing.T) {
	order := &Order{Status: OrderStatusPending}

	for _, s := range []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled, OrderStatusPending} {
		require.NoError(t, order.SetStatus(s))
		assert.Equal(t, s, order.Status)
	}

	err := order.SetStatus("lost")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestNumbers(t *testing.T) {
	day := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)

	assert.Regexp(t, regexp.MustCompile(`^TECH13-20240601-[1-9][0-9]{3}$`), NewOrderNumber(day))
	assert.Regexp(t, regexp.MustCompile(`^WALKIN-20240601-[1-9][0-9]{3}$`), NewSaleNumber(day))

	orig := randomSuffix
	t.Cleanup(func() { randomSuffix = orig })
	randomSuffix = func() int { return 4242 }
	assert.Equal(t, "TECH13-20240601-4242", NewOrderNumber(day))
}
