// Package dashboard builds the admin overview.
package dashboard

import (
	"context"

	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	apptrade "github.com/CRT1223/tech13-garage/internal/application/trade"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RecentOrdersLimit is how many orders the dashboard lists
const RecentOrdersLimit = 10

// Response is the admin dashboard
type Response struct {
	TotalProducts     int64                        `json:"total_products"`
	TotalOrders       int64                        `json:"total_orders"`
	TotalCustomers    int64                        `json:"total_customers"`
	TotalRevenue      decimal.Decimal              `json:"total_revenue"`
	RecentOrders      []apptrade.OrderResponse     `json:"recent_orders"`
	LowStockProducts  []appcatalog.ProductResponse `json:"low_stock_products"`
	LowStockThreshold int                          `json:"low_stock_threshold"`
}

// Service computes the dashboard figures
type Service struct {
	productRepo       catalog.ProductRepository
	orderRepo         trade.OrderRepository
	userRepo          identity.UserRepository
	urls              appcatalog.ImageURLer
	lowStockThreshold int
}

// NewService creates a new dashboard Service
func NewService(
	productRepo catalog.ProductRepository,
	orderRepo trade.OrderRepository,
	userRepo identity.UserRepository,
	urls appcatalog.ImageURLer,
	lowStockThreshold int,
) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = appcatalog.DefaultLowStockThreshold
	}
	return &Service{
		productRepo:       productRepo,
		orderRepo:         orderRepo,
		userRepo:          userRepo,
		urls:              urls,
		lowStockThreshold: lowStockThreshold,
	}
}

// Get computes counts, completed revenue, the latest orders and low-stock products
func (s *Service) Get(ctx context.Context) (*Response, error) {
	resp := &Response{LowStockThreshold: s.lowStockThreshold}
	var err error

	if resp.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.TotalCustomers, err = s.userRepo.CountByRole(ctx, identity.RoleCustomer); err != nil {
		return nil, err
	}
	if resp.TotalRevenue, err = s.orderRepo.CompletedRevenue(ctx); err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.FindAllWithCustomer(ctx, RecentOrdersLimit)
	if err != nil {
		return nil, err
	}
	resp.RecentOrders = lo.Map(recent, func(o trade.OrderSummary, _ int) apptrade.OrderResponse {
		return apptrade.ToOrderSummaryResponse(o)
	})

	low, err := s.productRepo.FindLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	resp.LowStockProducts = lo.Map(low, func(p catalog.Product, _ int) appcatalog.ProductResponse {
		return appcatalog.ToProductResponse(&p, s.urls)
	})
	return resp, nil
}
