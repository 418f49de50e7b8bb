package models

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryTransactionModel is the persistence model for a ledger entry.
type InventoryTransactionModel struct {
	ID              int64                     `gorm:"primaryKey;autoIncrement"`
	ProductID       int64                     `gorm:"not null;index"`
	TransactionType inventory.TransactionType `gorm:"type:varchar(20);not null;index"`
	Quantity        int                       `gorm:"not null"`
	OrderID         *int64                    `gorm:"index"`
	CustomerID      *int64
	AdminID         *int64
	Notes           string          `gorm:"type:text"`
	TransactionDate time.Time       `gorm:"not null;index"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryTransactionModel) TableName() string {
	return "inventory_transactions"
}

// ToDomain converts the persistence model to a domain Transaction.
func (m *InventoryTransactionModel) ToDomain() *inventory.Transaction {
	return &inventory.Transaction{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Type:            m.TransactionType,
		Quantity:        m.Quantity,
		OrderID:         m.OrderID,
		CustomerID:      m.CustomerID,
		AdminID:         m.AdminID,
		Notes:           m.Notes,
		TransactionDate: m.TransactionDate,
		UnitPrice:       m.UnitPrice,
		TotalAmount:     m.TotalAmount,
	}
}

// InventoryTransactionModelFromDomain creates a new persistence model from a domain Transaction.
func InventoryTransactionModelFromDomain(t *inventory.Transaction) *InventoryTransactionModel {
	return &InventoryTransactionModel{
		ID:              t.ID,
		ProductID:       t.ProductID,
		TransactionType: t.Type,
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

// TransactionViewRow is the scan target for ledger entries joined with product, admin and order
type TransactionViewRow struct {
	InventoryTransactionModel
	ProductName    *string
	ProductBrand   *string
	ProductModel   *string
	AdminFirstName *string
	AdminLastName  *string
	OrderNumber    *string
}

// ToDomain converts the row to a TransactionView
func (r *TransactionViewRow) ToDomain() inventory.TransactionView {
	return inventory.TransactionView{
		Transaction:    *r.InventoryTransactionModel.ToDomain(),
		ProductName:    deref(r.ProductName),
		ProductBrand:   deref(r.ProductBrand),
		ProductModel:   deref(r.ProductModel),
		AdminFirstName: deref(r.AdminFirstName),
		AdminLastName:  deref(r.AdminLastName),
		OrderNumber:    deref(r.OrderNumber),
	}
}

// ProductSummaryRow is the scan target for the stock overview
type ProductSummaryRow struct {
	ID            int64
	Name          string
	Brand         *string
	Model         *string
	StockQuantity int
	Price         decimal.Decimal
	CategoryName  *string
	TotalSold     int
	TotalWalkIn   int `gorm:"column:total_walkin"`
}

// ToDomain converts the row to a ProductSummary
func (r *ProductSummaryRow) ToDomain() inventory.ProductSummary {
	return inventory.ProductSummary{
		ProductID:     r.ID,
		Name:          r.Name,
		Brand:         deref(r.Brand),
		Model:         deref(r.Model),
		StockQuantity: r.StockQuantity,
		Price:         r.Price,
		CategoryName:  deref(r.CategoryName),
		TotalSold:     r.TotalSold,
		TotalWalkIn:   r.TotalWalkIn,
	}
}
