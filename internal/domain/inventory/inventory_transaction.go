package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType represents the reason a product's stock moved
type TransactionType string

const (
	// TransactionTypeSale is an online order shipped from stock
	TransactionTypeSale TransactionType = "sale"
	// TransactionTypeWalkIn is a counter sale recorded by an admin
	TransactionTypeWalkIn TransactionType = "walkin"
	// TransactionTypeReturn is stock coming back from a customer
	TransactionTypeReturn TransactionType = "return"
	// TransactionTypeAdjustment is a manual correction after a count
	TransactionTypeAdjustment TransactionType = "adjustment"
	// TransactionTypeRestock is a delivery from a supplier
	TransactionTypeRestock TransactionType = "restock"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSale,
		TransactionTypeWalkIn,
		TransactionTypeReturn,
		TransactionTypeAdjustment,
		TransactionTypeRestock:
		return true
	}
	return false
}

// AllTransactionTypes lists every ledger entry type
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeSale,
		TransactionTypeWalkIn,
		TransactionTypeReturn,
		TransactionTypeAdjustment,
		TransactionTypeRestock,
	}
}

// Transaction is one append-only ledger entry. Quantity is signed:
// positive entries add stock, negative entries remove it.
type Transaction struct {
	ID              int64
	ProductID       int64
	Type            TransactionType
	Quantity        int
	OrderID         *int64
	CustomerID      *int64
	AdminID         *int64
	Notes           string
	TransactionDate time.Time
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
}

// NewSaleTransaction records units leaving stock for an online order
func NewSaleTransaction(productID int64, qty int, orderID, customerID int64, orderNumber string, unitPrice decimal.Decimal) (*Transaction, error) {
	if qty <= 0 {
		return nil, shared.InvalidInput("Sale quantity must be positive")
	}
	return &Transaction{
		ProductID:       productID,
		Type:            TransactionTypeSale,
		Quantity:        -qty,
		OrderID:         &orderID,
		CustomerID:      &customerID,
		Notes:           fmt.Sprintf("Online order %s", orderNumber),
		TransactionDate: time.Now(),
		UnitPrice:       unitPrice,
		TotalAmount:     unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}

// NewWalkInTransaction records units sold over the counter
func NewWalkInTransaction(productID int64, qty int, adminID int64, saleNumber string, unitPrice, total decimal.Decimal) (*Transaction, error) {
	if qty <= 0 {
		return nil, shared.InvalidInput("Sale quantity must be positive")
	}
	return &Transaction{
		ProductID:       productID,
		Type:            TransactionTypeWalkIn,
		Quantity:        -qty,
		AdminID:         &adminID,
		Notes:           fmt.Sprintf("Walk-in sale %s", saleNumber),
		TransactionDate: time.Now(),
		UnitPrice:       unitPrice,
		TotalAmount:     total,
	}, nil
}

// NewRestockTransaction records a delivery. Empty notes default to "Restocked N units".
func NewRestockTransaction(productID int64, qty int, adminID int64, notes string) (*Transaction, error) {
	if qty <= 0 {
		return nil, shared.InvalidInput("Quantity must be positive")
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = fmt.Sprintf("Restocked %d units", qty)
	}
	return &Transaction{
		ProductID:       productID,
		Type:            TransactionTypeRestock,
		Quantity:        qty,
		AdminID:         &adminID,
		Notes:           notes,
		TransactionDate: time.Now(),
		UnitPrice:       decimal.Zero,
		TotalAmount:     decimal.Zero,
	}, nil
}

// NewManualTransaction records a signed correction (adjustment or return)
func NewManualTransaction(productID int64, txType TransactionType, delta int, adminID int64, notes string) (*Transaction, error) {
	if txType != TransactionTypeAdjustment && txType != TransactionTypeReturn {
		return nil, shared.InvalidInput("Manual entries must be adjustment or return")
	}
	if delta == 0 {
		return nil, shared.InvalidInput("Quantity cannot be zero")
	}
	if txType == TransactionTypeReturn && delta < 0 {
		return nil, shared.InvalidInput("Returns must add stock")
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = fmt.Sprintf("Manual %s of %+d units", txType, delta)
	}
	return &Transaction{
		ProductID:       productID,
		Type:            txType,
		Quantity:        delta,
		AdminID:         &adminID,
		Notes:           notes,
		TransactionDate: time.Now(),
		UnitPrice:       decimal.Zero,
		TotalAmount:     decimal.Zero,
	}, nil
}

// IsDecrease reports whether the entry removes stock
func (t *Transaction) IsDecrease() bool {
	return t.Quantity < 0
}

// Units returns the absolute number of units moved
func (t *Transaction) Units() int {
	if t.Quantity < 0 {
		return -t.Quantity
	}
	return t.Quantity
}
