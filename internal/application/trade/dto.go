package trade

import (
	"time"

	appcart "github.com/CRT1223/tech13-garage/internal/application/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ImageURLer resolves a stored image filename to its public URL
type ImageURLer interface {
	URL(name string) string
}

// CheckoutInput carries the checkout form
type CheckoutInput struct {
	CustomerID      int64
	IsAdmin         bool
	DeliveryAddress string
	Phone           string
	Notes           string
	IdempotencyKey  string
}

// CheckoutDefaults pre-fills the checkout form
type CheckoutDefaults struct {
	DeliveryAddress string                `json:"delivery_address"`
	Phone           string                `json:"phone"`
	Cart            *appcart.CartResponse `json:"cart"`
}

// OrderItemResponse is one line of an order
type OrderItemResponse struct {
	ID           int64           `json:"id"`
	ItemType     string          `json:"item_type"`
	ProductID    *int64          `json:"product_id,omitempty"`
	ServiceID    *int64          `json:"service_id,omitempty"`
	Name         string          `json:"name,omitempty"`
	ProductImage string          `json:"product_image,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an online order in API responses
type OrderResponse struct {
	ID              int64               `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerID      int64               `json:"customer_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	OrderDate       time.Time           `json:"order_date"`
	DeliveryAddress string              `json:"delivery_address"`
	Phone           string              `json:"phone"`
	Notes           string              `json:"notes"`
	CustomerName    string              `json:"customer_name,omitempty"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// ToOrderResponse converts an order to a response
func ToOrderResponse(o *trade.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.String(),
		OrderDate:       o.OrderDate,
		DeliveryAddress: o.DeliveryAddress,
		Phone:           o.Phone,
		Notes:           o.Notes,
		Items: lo.Map(o.Items, func(it trade.OrderItem, _ int) OrderItemResponse {
			return OrderItemResponse{
				ID:        it.ID,
				ItemType:  string(it.ItemType),
				ProductID: it.ProductID,
				ServiceID: it.ServiceID,
				Quantity:  it.Quantity,
				Price:     it.Price,
				Subtotal:  it.Subtotal(),
			}
		}),
	}
}

// ToOrderDetailResponse converts an order with joined lines to a response
func ToOrderDetailResponse(d *trade.OrderDetail, urls ImageURLer) OrderResponse {
	resp := ToOrderResponse(&d.Order)
	resp.Items = lo.Map(d.Lines, func(l trade.OrderItemView, _ int) OrderItemResponse {
		name := l.ServiceName
		if l.IsProduct() {
			name = l.ProductName
		}
		image := ""
		if urls != nil && l.ProductImage != "" {
			image = urls.URL(l.ProductImage)
		}
		return OrderItemResponse{
			ID:           l.ID,
			ItemType:     string(l.ItemType),
			ProductID:    l.ProductID,
			ServiceID:    l.ServiceID,
			Name:         name,
			ProductImage: image,
			Quantity:     l.Quantity,
			Price:        l.Price,
			Subtotal:     l.Subtotal(),
		}
	})
	return resp
}

// ToOrderSummaryResponse converts an order joined with its customer
func ToOrderSummaryResponse(s trade.OrderSummary) OrderResponse {
	resp := ToOrderResponse(&s.Order)
	resp.CustomerName = fullName(s.CustomerFirstName, s.CustomerLastName)
	resp.CustomerEmail = s.CustomerEmail
	return resp
}

// WalkInLineInput is one requested product on the walk-in form
type WalkInLineInput struct {
	ProductID int64
	Quantity  int
}

// WalkInSaleInput carries the walk-in sale form
type WalkInSaleInput struct {
	AdminID        int64
	CustomerName   string
	CustomerPhone  string
	PaymentMethod  string
	Notes          string
	Lines          []WalkInLineInput
	IdempotencyKey string
}

// WalkInItemResponse is one product sold over the counter
type WalkInItemResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	ProductBrand string          `json:"product_brand,omitempty"`
	ProductModel string          `json:"product_model,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// WalkInSaleResponse represents a walk-in sale in API responses
type WalkInSaleResponse struct {
	ID            int64                `json:"id"`
	SaleNumber    string               `json:"sale_number"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	PaymentMethod string               `json:"payment_method"`
	AdminID       int64                `json:"admin_id"`
	AdminName     string               `json:"admin_name,omitempty"`
	SaleDate      time.Time            `json:"sale_date"`
	Notes         string               `json:"notes"`
	ItemCount     int                  `json:"item_count"`
	Items         []WalkInItemResponse `json:"items,omitempty"`
}

// SkippedLineResponse reports a requested line left out of the sale
type SkippedLineResponse struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// WalkInSaleResult is the recorded sale plus the lines that were skipped
type WalkInSaleResult struct {
	Sale    WalkInSaleResponse    `json:"sale"`
	Skipped []SkippedLineResponse `json:"skipped"`
}

// ToWalkInSaleResponse converts a walk-in sale to a response
func ToWalkInSaleResponse(s *trade.WalkInSale) WalkInSaleResponse {
	return WalkInSaleResponse{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: string(s.PaymentMethod),
		AdminID:       s.AdminID,
		SaleDate:      s.SaleDate,
		Notes:         s.Notes,
		ItemCount:     len(s.Items),
		Items: lo.Map(s.Items, func(it trade.WalkInSaleItem, _ int) WalkInItemResponse {
			return WalkInItemResponse{
				ID:         it.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}),
	}
}

// ToWalkInSummaryResponse converts a sale joined with its admin
func ToWalkInSummaryResponse(s trade.WalkInSaleSummary) WalkInSaleResponse {
	resp := ToWalkInSaleResponse(&s.WalkInSale)
	resp.AdminName = fullName(s.AdminFirstName, s.AdminLastName)
	resp.ItemCount = s.ItemCount
	return resp
}

// ToWalkInDetailResponse converts a sale with joined items
func ToWalkInDetailResponse(d *trade.WalkInSaleDetail) WalkInSaleResponse {
	resp := ToWalkInSummaryResponse(d.WalkInSaleSummary)
	resp.Items = lo.Map(d.Lines, func(l trade.WalkInItemView, _ int) WalkInItemResponse {
		return WalkInItemResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			ProductBrand: l.ProductBrand,
			ProductModel: l.ProductModel,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   l.TotalPrice,
		}
	})
	resp.ItemCount = len(resp.Items)
	return resp
}

func fullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
