// Package cart models the per-customer shopping cart.
package cart

import (
	"strconv"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemType distinguishes part lines from workshop service lines
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// SessionKey returns the cart session identifier for a customer
func SessionKey(customerID int64) string {
	return strconv.FormatInt(customerID, 10)
}

// Item is a single cart line. Exactly one of ProductID and ServiceID is set.
type Item struct {
	ID        int64
	SessionID string
	ProductID *int64
	ServiceID *int64
	Quantity  int
	ItemType  ItemType
	CreatedAt time.Time
}

// NewItem creates a cart line. The item type follows the reference that is set.
func NewItem(sessionID string, productID, serviceID *int64, quantity int) (*Item, error) {
	if sessionID == "" {
		return nil, shared.InvalidInput("Cart session is required")
	}
	if (productID == nil) == (serviceID == nil) {
		return nil, shared.InvalidInput("Specify either a product or a service")
	}
	if quantity < 1 {
		return nil, shared.InvalidInput("Quantity must be at least 1")
	}
	itemType := ItemTypeService
	if productID != nil {
		itemType = ItemTypeProduct
	}
	return &Item{
		SessionID: sessionID,
		ProductID: productID,
		ServiceID: serviceID,
		Quantity:  quantity,
		ItemType:  itemType,
		CreatedAt: time.Now(),
	}, nil
}

// Line is a cart item joined with the name and price of what it references
type Line struct {
	Item
	ProductName  string
	ProductPrice *decimal.Decimal
	ProductImage string
	ServiceName  string
	ServicePrice *decimal.Decimal
}

// Name returns the product or service name
func (l Line) Name() string {
	if l.ItemType == ItemTypeProduct {
		return l.ProductName
	}
	return l.ServiceName
}

// UnitPrice is the product price, else the service price, else zero
func (l Line) UnitPrice() decimal.Decimal {
	if l.ProductPrice != nil {
		return *l.ProductPrice
	}
	if l.ServicePrice != nil {
		return *l.ServicePrice
	}
	return decimal.Zero
}

// LineTotal is UnitPrice * Quantity
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line totals of a cart
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
