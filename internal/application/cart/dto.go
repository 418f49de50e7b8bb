package cart

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// Caller identifies who is using the cart
type Caller struct {
	UserID  int64
	IsAdmin bool
}

// AddItemRequest puts a product or a service in the cart
type AddItemRequest struct {
	ProductID *int64
	ServiceID *int64
	Quantity  int
}

// LineResponse is one cart line as shown to the customer
type LineResponse struct {
	ID           int64           `json:"id"`
	ItemType     string          `json:"item_type"`
	ProductID    *int64          `json:"product_id,omitempty"`
	ServiceID    *int64          `json:"service_id,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
	ProductImage string          `json:"product_image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CartResponse is the cart with its computed subtotal
type CartResponse struct {
	Items     []LineResponse  `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ToCartResponse converts cart lines to a response
func ToCartResponse(lines []cart.Line) *CartResponse {
	items := make([]LineResponse, 0, len(lines))
	count := 0
	for _, l := range lines {
		items = append(items, LineResponse{
			ID:           l.ID,
			ItemType:     string(l.ItemType),
			ProductID:    l.ProductID,
			ServiceID:    l.ServiceID,
			Name:         l.Name(),
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice(),
			LineTotal:    l.LineTotal(),
			ProductImage: l.ProductImage,
			CreatedAt:    l.CreatedAt,
		})
		count += l.Quantity
	}
	return &CartResponse{
		Items:     items,
		ItemCount: count,
		Subtotal:  cart.Total(lines),
	}
}
