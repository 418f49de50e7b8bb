package trade

import (
	"context"
	"errors"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrNoWalkInLines is returned when the walk-in form carries no products
var ErrNoWalkInLines = shared.InvalidInput("Please add at least one product")

// WalkInService records over-the-counter sales
type WalkInService struct {
	saleRepo        trade.WalkInSaleRepository
	productRepo     catalog.ProductRepository
	guard           requestGuard
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
	now             func() time.Time
}

// NewWalkInService creates a new WalkInService
func NewWalkInService(
	saleRepo trade.WalkInSaleRepository,
	productRepo catalog.ProductRepository,
	idempotency shared.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger *zap.Logger,
) *WalkInService {
	return &WalkInService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		guard:       requestGuard{store: idempotency, scope: "walkin", ttl: idempotencyTTL, logger: logger},
		logger:      logger,
		now:         time.Now,
	}
}

// SetBusinessMetrics sets the business metrics for recording sale metrics
func (s *WalkInService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Create records a walk-in sale. Lines that cannot be sold are skipped and reported back.
func (s *WalkInService) Create(ctx context.Context, input WalkInSaleInput) (result *WalkInSaleResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "walkin", "create")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrAdminID, input.AdminID)

	if len(input.Lines) == 0 {
		return nil, ErrNoWalkInLines
	}

	release, err := s.guard.claim(ctx, input.AdminID, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			release()
			telemetry.RecordError(span, err)
		}
	}()

	lines := lo.Map(input.Lines, func(l WalkInLineInput, _ int) trade.WalkInLine {
		return trade.WalkInLine{ProductID: l.ProductID, Quantity: l.Quantity}
	})
	products, err := s.loadProducts(ctx, lines)
	if err != nil {
		return nil, err
	}
	items, skipped := trade.SelectWalkInItems(lines, products)

	customer := trade.WalkInCustomer{
		Name:          input.CustomerName,
		Phone:         input.CustomerPhone,
		PaymentMethod: trade.PaymentMethod(input.PaymentMethod),
		Notes:         input.Notes,
	}
	sale, err := s.createWithFreshNumber(ctx, input.AdminID, customer, items)
	if err != nil {
		return nil, err
	}

	s.recordMetrics(ctx, sale)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrSaleNumber, sale.SaleNumber,
		telemetry.SpanAttrItemCount, len(sale.Items),
	)
	s.logger.Info("Walk-in sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.String("sale_number", sale.SaleNumber),
		zap.Int64("admin_id", sale.AdminID),
		zap.Int("skipped", len(skipped)),
	)

	return &WalkInSaleResult{
		Sale: ToWalkInSaleResponse(sale),
		Skipped: lo.Map(skipped, func(sk trade.SkippedLine, _ int) SkippedLineResponse {
			return SkippedLineResponse{ProductID: sk.ProductID, Quantity: sk.Quantity, Reason: sk.Reason}
		}),
	}, nil
}

func (s *WalkInService) loadProducts(ctx context.Context, lines []trade.WalkInLine) (map[int64]*catalog.Product, error) {
	ids := lo.Uniq(lo.Map(lines, func(l trade.WalkInLine, _ int) int64 { return l.ProductID }))
	products := make(map[int64]*catalog.Product, len(ids))
	for _, id := range ids {
		p, err := s.productRepo.FindByID(ctx, id)
		if errors.Is(err, shared.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products[id] = p
	}
	return products, nil
}

func (s *WalkInService) createWithFreshNumber(ctx context.Context, adminID int64, c trade.WalkInCustomer, items []trade.WalkInSaleItem) (*trade.WalkInSale, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := trade.NewSaleNumber(s.now())
		taken, err := s.saleRepo.ExistsBySaleNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		sale, err := trade.NewWalkInSale(number, adminID, c, items)
		if err != nil {
			return nil, err
		}
		err = s.saleRepo.Create(ctx, sale)
		if errors.Is(err, shared.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return sale, nil
	}
	return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Could not allocate a sale number, please retry")
}

func (s *WalkInService) recordMetrics(ctx context.Context, sale *trade.WalkInSale) {
	if s.businessMetrics == nil {
		return
	}
	s.businessMetrics.RecordWalkInSale(ctx, string(sale.PaymentMethod), sale.TotalAmount)
	for _, it := range sale.Items {
		s.businessMetrics.RecordStockMovement(ctx, inventory.TransactionTypeWalkIn.String(), -it.Quantity)
	}
}

// List lists walk-in sales with the recording admin, newest first
func (s *WalkInService) List(ctx context.Context) ([]WalkInSaleResponse, error) {
	sales, err := s.saleRepo.FindAllWithAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(sales, func(sale trade.WalkInSaleSummary, _ int) WalkInSaleResponse {
		return ToWalkInSummaryResponse(sale)
	}), nil
}

// Detail returns a walk-in sale with its items
func (s *WalkInService) Detail(ctx context.Context, id int64) (*WalkInSaleResponse, error) {
	detail, err := s.saleRepo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToWalkInDetailResponse(detail)
	return &resp, nil
}
