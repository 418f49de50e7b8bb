package inventory

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// RestockInput adds delivered units to a product
type RestockInput struct {
	AdminID   int64
	ProductID int64
	Quantity  int
	Notes     string
}

// AdjustInput records a signed manual correction
type AdjustInput struct {
	AdminID   int64
	ProductID int64
	Type      string
	Quantity  int
	Notes     string
}

// SummaryResponse is one row of the stock overview
type SummaryResponse struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	StockQuantity int             `json:"stock_quantity"`
	Price         decimal.Decimal `json:"price"`
	CategoryName  string          `json:"category_name"`
	TotalSold     int             `json:"total_sold"`
	TotalWalkIn   int             `json:"total_walkin"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	ProductBrand    string          `json:"product_brand,omitempty"`
	ProductModel    string          `json:"product_model,omitempty"`
	Type            string          `json:"transaction_type"`
	Quantity        int             `json:"quantity"`
	OrderID         *int64          `json:"order_id,omitempty"`
	OrderNumber     string          `json:"order_number,omitempty"`
	CustomerID      *int64          `json:"customer_id,omitempty"`
	AdminID         *int64          `json:"admin_id,omitempty"`
	AdminName       string          `json:"admin_name,omitempty"`
	Notes           string          `json:"notes"`
	TransactionDate time.Time       `json:"transaction_date"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// ToTransactionResponse converts a ledger entry to a response
func ToTransactionResponse(t *inventory.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		ProductID:       t.ProductID,
		Type:            t.Type.String(),
		Quantity:        t.Quantity,
		OrderID:         t.OrderID,
		CustomerID:      t.CustomerID,
		AdminID:         t.AdminID,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate,
		UnitPrice:       t.UnitPrice,
		TotalAmount:     t.TotalAmount,
	}
}

// ToTransactionViewResponse converts a joined ledger entry to a response
func ToTransactionViewResponse(v inventory.TransactionView) TransactionResponse {
	resp := ToTransactionResponse(&v.Transaction)
	resp.ProductName = v.ProductName
	resp.ProductBrand = v.ProductBrand
	resp.ProductModel = v.ProductModel
	resp.OrderNumber = v.OrderNumber
	resp.AdminName = joinName(v.AdminFirstName, v.AdminLastName)
	return resp
}

func joinName(first, last string) string {
	if first == "" || last == "" {
		return first + last
	}
	return first + " " + last
}
