package models

import (
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductModel_RoundTrip(t *testing.T) {
	catID := int64(2)
	p, err := catalog.NewProduct(catalog.ProductDetails{
		Name:          "Racing Exhaust System",
		Price:         decimal.RequireFromString("899.99"),
		CategoryID:    &catID,
		Brand:         "Akrapovic",
		StockQuantity: 15,
		IsRacing:      true,
	})
	require.NoError(t, err)
	p.ID = 9

	got := ProductModelFromDomain(p).ToDomain()
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, p.Price.Equal(got.Price))
	assert.Equal(t, catID, *got.CategoryID)
	assert.True(t, got.IsRacing)
	assert.False(t, got.IsDaily)
}

func TestCartLineRow_ToDomain(t *testing.T) {
	name := "Oil Change"
	row := CartLineRow{
		CartItemModel: CartItemModel{ID: 1, SessionID: "7", Quantity: 2, ItemType: cart.ItemTypeService},
		ServiceName:   &name,
		ServicePrice:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}

	line := row.ToDomain()
	assert.Equal(t, "Oil Change", line.Name())
	assert.Nil(t, line.ProductPrice)
	assert.True(t, line.LineTotal().Equal(decimal.NewFromInt(100)))
}

func TestOrderModel_FromDomainCopiesItems(t *testing.T) {
	pid := int64(3)
	o := &trade.Order{
		ID:          5,
		OrderNumber: "TECH13-20240601-1234",
		Status:      trade.OrderStatusPending,
		Items: []trade.OrderItem{
			{ProductID: &pid, Quantity: 2, Price: decimal.NewFromInt(10), ItemType: cart.ItemTypeProduct},
		},
	}

	m := OrderModelFromDomain(o)
	require.Len(t, m.Items, 1)
	assert.Equal(t, int64(5), m.Items[0].OrderID)

	back := m.ToDomain()
	assert.Equal(t, o.OrderNumber, back.OrderNumber)
	require.Len(t, back.Items, 1)
	assert.Equal(t, pid, *back.Items[0].ProductID)
}

func TestContentModels_KeepInactiveFlag(t *testing.T) {
	m, err := content.NewTeamMember(content.TeamMemberDetails{Name: "A", Role: "B", Listing: content.Listing{DisplayOrder: 3}})
	require.NoError(t, err)

	got := TeamMemberModelFromDomain(m).ToDomain()
	assert.False(t, got.IsActive)
	assert.Equal(t, 3, got.DisplayOrder)
}

func TestAllModels_HaveTables(t *testing.T) {
	type tabler interface{ TableName() string }
	seen := map[string]bool{}
	for _, m := range AllModels() {
		tm, ok := m.(tabler)
		require.True(t, ok)
		seen[tm.TableName()] = true
	}
	assert.Len(t, seen, 14)
}
