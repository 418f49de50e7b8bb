package trade

import (
	"strings"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an online order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// ErrEmptyCart is returned when checking out a cart without lines
var ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Your cart is empty")

// OrderItem is a price snapshot of one cart line
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID *int64
	ServiceID *int64
	Quantity  int
	Price     decimal.Decimal
	ItemType  cart.ItemType
}

// Subtotal returns Price * Quantity
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsProduct reports whether the item draws on product stock
func (i OrderItem) IsProduct() bool {
	return i.ItemType == cart.ItemTypeProduct && i.ProductID != nil
}

// Delivery carries the checkout form fields
type Delivery struct {
	Address string
	Phone   string
	Notes   string
}

// Order is an online order placed from a customer's cart
type Order struct {
	ID              int64
	CustomerID      int64
	OrderNumber     string
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	OrderDate       time.Time
	DeliveryAddress string
	Phone           string
	Notes           string
	Items           []OrderItem
}

// NewOrderFromCart snapshots the cart lines into a pending order
func NewOrderFromCart(customerID int64, orderNumber string, lines []cart.Line, d Delivery) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if orderNumber == "" {
		return nil, shared.InvalidInput("Order number cannot be empty")
	}

	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			ProductID: l.ProductID,
			ServiceID: l.ServiceID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice(),
			ItemType:  l.ItemType,
		})
	}

	return &Order{
		CustomerID:      customerID,
		OrderNumber:     orderNumber,
		TotalAmount:     cart.Total(lines),
		Status:          OrderStatusPending,
		OrderDate:       time.Now(),
		DeliveryAddress: strings.TrimSpace(d.Address),
		Phone:           strings.TrimSpace(d.Phone),
		Notes:           strings.TrimSpace(d.Notes),
		Items:           items,
	}, nil
}

// SetStatus moves the order to any known status
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.InvalidInput("Invalid order status")
	}
	o.Status = status
	return nil
}

// ProductItems returns the items that draw on stock
func (o *Order) ProductItems() []OrderItem {
	var out []OrderItem
	for _, it := range o.Items {
		if it.IsProduct() {
			out = append(out, it)
		}
	}
	return out
}

// OrderSummary is an order joined with its customer for the back office
type OrderSummary struct {
	Order
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
}

// OrderItemView is an order item joined with what it references
type OrderItemView struct {
	OrderItem
	ProductName  string
	ProductImage string
	ServiceName  string
}

// OrderDetail is an order with its joined items
type OrderDetail struct {
	Order
	Lines []OrderItemView
}
