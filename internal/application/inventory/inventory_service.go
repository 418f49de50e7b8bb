package inventory

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultRecentLimit is how many ledger entries the inventory page shows
const DefaultRecentLimit = 50

// InventoryService handles stock levels and the inventory ledger
type InventoryService struct {
	txRepo            inventory.TransactionRepository
	productRepo       catalog.ProductRepository
	lowStockThreshold int
	recentLimit       int
	logger            *zap.Logger
	businessMetrics   *telemetry.BusinessMetrics
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	txRepo inventory.TransactionRepository,
	productRepo catalog.ProductRepository,
	lowStockThreshold int,
	recentLimit int,
	logger *zap.Logger,
) *InventoryService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &InventoryService{
		txRepo:            txRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
		recentLimit:       recentLimit,
		logger:            logger,
	}
}

// SetBusinessMetrics sets the business metrics for recording stock movements
func (s *InventoryService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Summary returns one row per product with units sold online and over the counter
func (s *InventoryService) Summary(ctx context.Context) ([]SummaryResponse, error) {
	rows, err := s.txRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r inventory.ProductSummary, _ int) SummaryResponse {
		return SummaryResponse{
			ProductID:     r.ProductID,
			Name:          r.Name,
			Brand:         r.Brand,
			Model:         r.Model,
			StockQuantity: r.StockQuantity,
			Price:         r.Price,
			CategoryName:  r.CategoryName,
			TotalSold:     r.TotalSold,
			TotalWalkIn:   r.TotalWalkIn,
		}
	}), nil
}

// Restock adds delivered units to a product and records them in the ledger
func (s *InventoryService) Restock(ctx context.Context, input RestockInput) (*TransactionResponse, error) {
	entry, err := inventory.NewRestockTransaction(input.ProductID, input.Quantity, input.AdminID, input.Notes)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, entry)
}

// Adjust records a manual adjustment or return through the same guarded write as Restock
func (s *InventoryService) Adjust(ctx context.Context, input AdjustInput) (*TransactionResponse, error) {
	entry, err := inventory.NewManualTransaction(input.ProductID, inventory.TransactionType(input.Type), input.Quantity, input.AdminID, input.Notes)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, entry)
}

func (s *InventoryService) apply(ctx context.Context, entry *inventory.Transaction) (*TransactionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", string(entry.Type))
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrProductID, entry.ProductID,
		telemetry.SpanAttrQuantity, entry.Quantity,
	)

	if _, err := s.productRepo.FindByID(ctx, entry.ProductID); err != nil {
		return nil, err
	}
	if err := s.txRepo.Apply(ctx, entry); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordStockMovement(ctx, entry.Type.String(), entry.Quantity)
	}
	s.logger.Info("Stock moved",
		zap.Int64("product_id", entry.ProductID),
		zap.String("type", entry.Type.String()),
		zap.Int("quantity", entry.Quantity),
	)
	resp := ToTransactionResponse(entry)
	return &resp, nil
}

// Recent returns the latest ledger entries, newest first
func (s *InventoryService) Recent(ctx context.Context, limit int) ([]TransactionResponse, error) {
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}
	views, err := s.txRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(views, func(v inventory.TransactionView, _ int) TransactionResponse {
		return ToTransactionViewResponse(v)
	}), nil
}

// History returns one product's ledger entries, newest first
func (s *InventoryService) History(ctx context.Context, productID int64) ([]TransactionResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	entries, err := s.txRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(t inventory.Transaction, _ int) TransactionResponse {
		return ToTransactionResponse(&t)
	}), nil
}

// LowStockCount counts products below the configured threshold
func (s *InventoryService) LowStockCount(ctx context.Context) (int64, error) {
	products, err := s.productRepo.FindLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}
