package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSummary is one row of the stock overview
type ProductSummary struct {
	ProductID     int64
	Name          string
	Brand         string
	Model         string
	StockQuantity int
	Price         decimal.Decimal
	CategoryName  string
	// TotalSold is the sum of |quantity| over sale entries
	TotalSold int
	// TotalWalkIn is the sum of |quantity| over walk-in entries
	TotalWalkIn int
}

// TransactionView is a ledger entry joined with the names around it
type TransactionView struct {
	Transaction
	ProductName    string
	ProductBrand   string
	ProductModel   string
	AdminFirstName string
	AdminLastName  string
	OrderNumber    string
}

// TransactionRepository defines the interface for the inventory ledger.
// Apply moves the product's stock counter and appends the entry in one unit of work.
type TransactionRepository interface {
	// Apply adds entry.Quantity to the product's stock and appends the entry.
	// A decrease that would leave negative stock fails with ErrInsufficientStock;
	// a missing product fails with ErrNotFound.
	Apply(ctx context.Context, entry *Transaction) error

	// Summary returns one row per product ordered by name
	Summary(ctx context.Context) ([]ProductSummary, error)

	// Recent returns the latest entries, newest first
	Recent(ctx context.Context, limit int) ([]TransactionView, error)

	// FindByProduct returns a product's entries, newest first
	FindByProduct(ctx context.Context, productID int64) ([]Transaction, error)

	// NetChange sums the signed quantities recorded for a product
	NetChange(ctx context.Context, productID int64) (int, error)
}
