package catalog

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a motorcycle part sold online and over the counter.
// StockQuantity is a running counter; the inventory ledger records every change to it.
type Product struct {
	shared.BaseEntity
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    *int64
	Brand         string
	Model         string
	YearRange     string
	StockQuantity int
	Image         string
	IsRacing      bool
	IsDaily       bool
}

// ProductDetails carries the editable fields of a product
type ProductDetails struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    *int64
	Brand         string
	Model         string
	YearRange     string
	StockQuantity int
	IsRacing      bool
	IsDaily       bool
}

// NewProduct creates a new product from its details
func NewProduct(d ProductDetails) (*Product, error) {
	p := &Product{BaseEntity: shared.NewBaseEntity()}
	if err := p.apply(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields. The image is left untouched.
func (p *Product) Update(d ProductDetails) error {
	if err := p.apply(d); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *Product) apply(d ProductDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.InvalidInput("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.InvalidInput("Product name cannot exceed 200 characters")
	}
	if !d.Price.IsPositive() {
		return shared.InvalidInput("Price must be greater than zero")
	}
	if d.StockQuantity < 0 {
		return shared.InvalidInput("Stock quantity cannot be negative")
	}

	p.Name = name
	p.Description = strings.TrimSpace(d.Description)
	p.Price = d.Price
	p.CategoryID = d.CategoryID
	p.Brand = strings.TrimSpace(d.Brand)
	p.Model = strings.TrimSpace(d.Model)
	p.YearRange = strings.TrimSpace(d.YearRange)
	p.StockQuantity = d.StockQuantity
	p.IsRacing = d.IsRacing
	p.IsDaily = d.IsDaily
	return nil
}

// SetImage records the stored image filename
func (p *Product) SetImage(filename string) {
	p.Image = filename
	p.Touch()
}

// InStock reports whether at least one unit is available
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// HasStockFor reports whether qty units can be sold
func (p *Product) HasStockFor(qty int) bool {
	return qty > 0 && p.StockQuantity >= qty
}

// LineTotal returns price * qty
func (p *Product) LineTotal(qty int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(qty)))
}

// ProductListing is a product joined with its category name
type ProductListing struct {
	Product
	CategoryName string
}
