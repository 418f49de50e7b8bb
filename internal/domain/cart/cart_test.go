package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewItem(t *testing.T) {
	t.Run("product line", func(t *testing.T) {
		item, err := NewItem("7", ptr(int64(3)), nil, 2)
		require.NoError(t, err)
		assert.Equal(t, ItemTypeProduct, item.ItemType)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("service line", func(t *testing.T) {
		item, err := NewItem("7", nil, ptr(int64(1)), 1)
		require.NoError(t, err)
		assert.Equal(t, ItemTypeService, item.ItemType)
	})

	t.Run("rejects both references", func(t *testing.T) {
		_, err := NewItem("7", ptr(int64(3)), ptr(int64(1)), 1)
		assert.Error(t, err)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewItem("7", ptr(int64(3)), nil, 0)
		assert.Error(t, err)
	})

	t.Run("rejects missing session", func(t *testing.T) {
		_, err := NewItem("", ptr(int64(3)), nil, 1)
		assert.Error(t, err)
	})
}

func TestLinePricing(t *testing.T) {
	lines := []Line{
		{Item: Item{ItemType: ItemTypeProduct, Quantity: 2}, ProductName: "Racing Brake Pads", ProductPrice: ptr(decimal.RequireFromString("89.99"))},
		{Item: Item{ItemType: ItemTypeService, Quantity: 1}, ServiceName: "Oil Change", ServicePrice: ptr(decimal.RequireFromString("49.99"))},
		{Item: Item{ItemType: ItemTypeProduct, Quantity: 4}},
	}

	assert.Equal(t, "Racing Brake Pads", lines[0].Name())
	assert.Equal(t, "Oil Change", lines[1].Name())
	assert.True(t, lines[2].UnitPrice().IsZero())
	assert.True(t, Total(lines).Equal(decimal.RequireFromString("229.97")))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "42", SessionKey(42))
}
