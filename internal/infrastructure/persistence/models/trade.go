package models

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for an online order.
type OrderModel struct {
	ID              int64             `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64             `gorm:"not null;index"`
	OrderNumber     string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Status          trade.OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	OrderDate       time.Time         `gorm:"not null;index"`
	DeliveryAddress string            `gorm:"type:text"`
	Phone           string            `gorm:"type:varchar(50)"`
	Notes           string            `gorm:"type:text"`
	Items           []OrderItemModel  `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *trade.Order {
	o := &trade.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		OrderNumber:     m.OrderNumber,
		TotalAmount:     m.TotalAmount,
		Status:          m.Status,
		OrderDate:       m.OrderDate,
		DeliveryAddress: m.DeliveryAddress,
		Phone:           m.Phone,
		Notes:           m.Notes,
	}
	for i := range m.Items {
		o.Items = append(o.Items, m.Items[i].ToDomain())
	}
	return o
}

// FromDomain populates the persistence model from a domain Order, items included.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.ID = o.ID
	m.CustomerID = o.CustomerID
	m.OrderNumber = o.OrderNumber
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status
	m.OrderDate = o.OrderDate
	m.DeliveryAddress = o.DeliveryAddress
	m.Phone = o.Phone
	m.Notes = o.Notes
	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for _, it := range o.Items {
		m.Items = append(m.Items, OrderItemModel{
			ID:        it.ID,
			OrderID:   o.ID,
			ProductID: it.ProductID,
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			ItemType:  it.ItemType,
		})
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID *int64          `gorm:"index"`
	ServiceID *int64          `gorm:"index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ItemType  cart.ItemType   `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() trade.OrderItem {
	return trade.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		ServiceID: m.ServiceID,
		Quantity:  m.Quantity,
		Price:     m.Price,
		ItemType:  m.ItemType,
	}
}

// OrderSummaryRow is the scan target for orders joined with their customer
type OrderSummaryRow struct {
	OrderModel
	FirstName *string
	LastName  *string
	Email     *string
}

// ToDomain converts the row to an OrderSummary
func (r *OrderSummaryRow) ToDomain() trade.OrderSummary {
	return trade.OrderSummary{
		Order:             *r.OrderModel.ToDomain(),
		CustomerFirstName: deref(r.FirstName),
		CustomerLastName:  deref(r.LastName),
		CustomerEmail:     deref(r.Email),
	}
}

// OrderItemRow is the scan target for order items joined with products and services
type OrderItemRow struct {
	OrderItemModel
	ProductName  *string
	ProductImage *string
	ServiceName  *string
}

// ToDomain converts the row to an OrderItemView
func (r *OrderItemRow) ToDomain() trade.OrderItemView {
	return trade.OrderItemView{
		OrderItem:    r.OrderItemModel.ToDomain(),
		ProductName:  deref(r.ProductName),
		ProductImage: deref(r.ProductImage),
		ServiceName:  deref(r.ServiceName),
	}
}

// WalkInSaleModel is the persistence model for a counter sale.
type WalkInSaleModel struct {
	ID            int64                 `gorm:"primaryKey;autoIncrement"`
	SaleNumber    string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName  string                `gorm:"type:varchar(200)"`
	CustomerPhone string                `gorm:"type:varchar(50)"`
	TotalAmount   decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
	PaymentMethod trade.PaymentMethod   `gorm:"type:varchar(20);not null;default:'cash'"`
	AdminID       int64                 `gorm:"not null;index"`
	SaleDate      time.Time             `gorm:"not null;index"`
	Notes         string                `gorm:"type:text"`
	Items         []WalkInSaleItemModel `gorm:"foreignKey:WalkInSaleID"`
}

// TableName returns the table name for GORM
func (WalkInSaleModel) TableName() string {
	return "walkin_sales"
}

// ToDomain converts the persistence model to a domain WalkInSale.
func (m *WalkInSaleModel) ToDomain() *trade.WalkInSale {
	s := &trade.WalkInSale{
		ID:            m.ID,
		SaleNumber:    m.SaleNumber,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		AdminID:       m.AdminID,
		SaleDate:      m.SaleDate,
		Notes:         m.Notes,
	}
	for i := range m.Items {
		s.Items = append(s.Items, m.Items[i].ToDomain())
	}
	return s
}

// WalkInSaleModelFromDomain creates a new persistence model from a domain WalkInSale, items included.
func WalkInSaleModelFromDomain(s *trade.WalkInSale) *WalkInSaleModel {
	m := &WalkInSaleModel{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		AdminID:       s.AdminID,
		SaleDate:      s.SaleDate,
		Notes:         s.Notes,
		Items:         make([]WalkInSaleItemModel, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		m.Items = append(m.Items, WalkInSaleItemModel{
			ID:           it.ID,
			WalkInSaleID: s.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
		})
	}
	return m
}

// WalkInSaleItemModel is the persistence model for a counter sale line.
type WalkInSaleItemModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	WalkInSaleID int64           `gorm:"column:walkin_sale_id;not null;index"`
	ProductID    int64           `gorm:"not null;index"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (WalkInSaleItemModel) TableName() string {
	return "walkin_sale_items"
}

// ToDomain converts the persistence model to a domain WalkInSaleItem.
func (m *WalkInSaleItemModel) ToDomain() trade.WalkInSaleItem {
	return trade.WalkInSaleItem{
		ID:           m.ID,
		WalkInSaleID: m.WalkInSaleID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TotalPrice:   m.TotalPrice,
	}
}

// WalkInSaleRow is the scan target for sales joined with the recording admin
type WalkInSaleRow struct {
	WalkInSaleModel
	FirstName *string
	LastName  *string
	ItemCount int
}

// ToDomain converts the row to a WalkInSaleSummary
func (r *WalkInSaleRow) ToDomain() trade.WalkInSaleSummary {
	return trade.WalkInSaleSummary{
		WalkInSale:     *r.WalkInSaleModel.ToDomain(),
		AdminFirstName: deref(r.FirstName),
		AdminLastName:  deref(r.LastName),
		ItemCount:      r.ItemCount,
	}
}

// WalkInItemRow is the scan target for sale items joined with their product
type WalkInItemRow struct {
	WalkInSaleItemModel
	ProductName  *string
	ProductBrand *string
	ProductModel *string
}

// ToDomain converts the row to a WalkInItemView
func (r *WalkInItemRow) ToDomain() trade.WalkInItemView {
	return trade.WalkInItemView{
		WalkInSaleItem: r.WalkInSaleItemModel.ToDomain(),
		ProductName:    deref(r.ProductName),
		ProductBrand:   deref(r.ProductBrand),
		ProductModel:   deref(r.ProductModel),
	}
}
