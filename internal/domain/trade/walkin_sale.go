package trade

import (
	"strings"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a walk-in customer paid
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodOther PaymentMethod = "other"
)

// IsValid reports whether the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOther:
		return true
	}
	return false
}

// WalkInLine is one product requested on the walk-in form
type WalkInLine struct {
	ProductID int64
	Quantity  int
}

// SkippedLine reports a requested line that was left out of the sale
type SkippedLine struct {
	ProductID int64
	Quantity  int
	Reason    string
}

// Skip reasons
const (
	SkipReasonQuantity = "quantity must be positive"
	SkipReasonMissing  = "product not found"
	SkipReasonStock    = "insufficient stock"
)

// WalkInSaleItem is a product sold over the counter
type WalkInSaleItem struct {
	ID           int64
	WalkInSaleID int64
	ProductID    int64
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
}

// WalkInSale is a counter sale recorded by an admin
type WalkInSale struct {
	ID            int64
	SaleNumber    string
	CustomerName  string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	AdminID       int64
	SaleDate      time.Time
	Notes         string
	Items         []WalkInSaleItem
}

// WalkInCustomer carries the optional buyer fields of a walk-in sale
type WalkInCustomer struct {
	Name          string
	Phone         string
	PaymentMethod PaymentMethod
	Notes         string
}

// SelectWalkInItems keeps the requested lines that can be sold from the given products.
// Lines with a non-positive quantity, an unknown product or too little stock are skipped.
// Stock is consumed line by line, so repeated lines for one product never sell more than it holds.
func SelectWalkInItems(lines []WalkInLine, products map[int64]*catalog.Product) ([]WalkInSaleItem, []SkippedLine) {
	var (
		items   []WalkInSaleItem
		skipped []SkippedLine
		taken   = make(map[int64]int)
	)
	for _, l := range lines {
		if l.Quantity <= 0 {
			skipped = append(skipped, SkippedLine{ProductID: l.ProductID, Quantity: l.Quantity, Reason: SkipReasonQuantity})
			continue
		}
		p, ok := products[l.ProductID]
		if !ok || p == nil {
			skipped = append(skipped, SkippedLine{ProductID: l.ProductID, Quantity: l.Quantity, Reason: SkipReasonMissing})
			continue
		}
		if !p.HasStockFor(taken[p.ID] + l.Quantity) {
			skipped = append(skipped, SkippedLine{ProductID: l.ProductID, Quantity: l.Quantity, Reason: SkipReasonStock})
			continue
		}
		taken[p.ID] += l.Quantity
		items = append(items, WalkInSaleItem{
			ProductID:  p.ID,
			Quantity:   l.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: p.LineTotal(l.Quantity),
		})
	}
	return items, skipped
}

// NewWalkInSale creates a counter sale from already selected items
func NewWalkInSale(saleNumber string, adminID int64, c WalkInCustomer, items []WalkInSaleItem) (*WalkInSale, error) {
	if len(items) == 0 {
		return nil, shared.InvalidInput("No valid products selected")
	}
	if saleNumber == "" {
		return nil, shared.InvalidInput("Sale number cannot be empty")
	}
	method := c.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, shared.InvalidInput("Invalid payment method")
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}

	return &WalkInSale{
		SaleNumber:    saleNumber,
		CustomerName:  strings.TrimSpace(c.Name),
		CustomerPhone: strings.TrimSpace(c.Phone),
		TotalAmount:   total,
		PaymentMethod: method,
		AdminID:       adminID,
		SaleDate:      time.Now(),
		Notes:         strings.TrimSpace(c.Notes),
		Items:         items,
	}, nil
}

// WalkInSaleSummary is a sale joined with the admin who recorded it
type WalkInSaleSummary struct {
	WalkInSale
	AdminFirstName string
	AdminLastName  string
	ItemCount      int
}

// WalkInItemView is a sale item joined with its product
type WalkInItemView struct {
	WalkInSaleItem
	ProductName  string
	ProductBrand string
	ProductModel string
}

// WalkInSaleDetail is a sale with its joined items
type WalkInSaleDetail struct {
	WalkInSaleSummary
	Lines []WalkInItemView
}
