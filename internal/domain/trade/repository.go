package trade

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for online order persistence
type OrderRepository interface {
	// PlaceOrder inserts the order and its items, records a sale ledger entry for
	// every product item, decrements stock and clears the session's cart.
	// All of it happens in one transaction; a decrement below zero aborts the
	// whole order with ErrInsufficientStock.
	PlaceOrder(ctx context.Context, order *Order, sessionID string) error

	// ExistsByOrderNumber checks if an order number is taken
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// FindByID finds an order without items
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindByCustomer lists a customer's orders, newest first
	FindByCustomer(ctx context.Context, customerID int64) ([]Order, error)

	// FindDetailForCustomer returns the order with its items if it belongs to the customer
	FindDetailForCustomer(ctx context.Context, customerID, id int64) (*OrderDetail, error)

	// FindAllWithCustomer lists orders with customer names, newest first. limit <= 0 means all.
	FindAllWithCustomer(ctx context.Context, limit int) ([]OrderSummary, error)

	// UpdateStatus sets the status of an existing order
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// CompletedRevenue sums the totals of completed orders
	CompletedRevenue(ctx context.Context) (decimal.Decimal, error)
}

// WalkInSaleRepository defines the interface for walk-in sale persistence
type WalkInSaleRepository interface {
	// Create inserts the sale and its items, decrements stock and records a walkin
	// ledger entry per item in one transaction
	Create(ctx context.Context, sale *WalkInSale) error

	// ExistsBySaleNumber checks if a sale number is taken
	ExistsBySaleNumber(ctx context.Context, saleNumber string) (bool, error)

	// FindAllWithAdmin lists sales with the recording admin, newest first
	FindAllWithAdmin(ctx context.Context) ([]WalkInSaleSummary, error)

	// FindDetail returns a sale with its items
	FindDetail(ctx context.Context, id int64) (*WalkInSaleDetail, error)
}
