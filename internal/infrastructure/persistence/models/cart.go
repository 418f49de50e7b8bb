package models

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// CartItemModel is the persistence model for a cart line.
type CartItemModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	SessionID string        `gorm:"type:varchar(100);not null;index"`
	ProductID *int64        `gorm:"index"`
	ServiceID *int64        `gorm:"index"`
	Quantity  int           `gorm:"not null;default:1"`
	ItemType  cart.ItemType `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart"
}

// ToDomain converts the persistence model to a domain cart Item.
func (m *CartItemModel) ToDomain() *cart.Item {
	return &cart.Item{
		ID:        m.ID,
		SessionID: m.SessionID,
		ProductID: m.ProductID,
		ServiceID: m.ServiceID,
		Quantity:  m.Quantity,
		ItemType:  m.ItemType,
		CreatedAt: m.CreatedAt,
	}
}

// CartItemModelFromDomain creates a new persistence model from a domain cart Item.
func CartItemModelFromDomain(i *cart.Item) *CartItemModel {
	return &CartItemModel{
		ID:        i.ID,
		SessionID: i.SessionID,
		ProductID: i.ProductID,
		ServiceID: i.ServiceID,
		Quantity:  i.Quantity,
		ItemType:  i.ItemType,
		CreatedAt: i.CreatedAt,
	}
}

// CartLineRow is the scan target for cart lines joined with products and services
type CartLineRow struct {
	CartItemModel
	ProductName  *string
	ProductPrice decimal.NullDecimal
	ProductImage *string
	ServiceName  *string
	ServicePrice decimal.NullDecimal
}

// ToDomain converts the row to a cart Line
func (r *CartLineRow) ToDomain() cart.Line {
	l := cart.Line{Item: *r.CartItemModel.ToDomain()}
	l.ProductName = deref(r.ProductName)
	l.ProductImage = deref(r.ProductImage)
	l.ServiceName = deref(r.ServiceName)
	if r.ProductPrice.Valid {
		p := r.ProductPrice.Decimal
		l.ProductPrice = &p
	}
	if r.ServicePrice.Valid {
		p := r.ServicePrice.Decimal
		l.ServicePrice = &p
	}
	return l
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
