package trade

import (
	"context"
	"errors"
	"time"

	appcart "github.com/CRT1223/tech13-garage/internal/application/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrAdminCheckout is returned when an administrator tries to place an order
var ErrAdminCheckout = shared.NewDomainError(shared.ErrForbidden.Code, "Administrators cannot place orders. Please use a customer account.")

// OrderService handles checkout and order management
type OrderService struct {
	orderRepo       trade.OrderRepository
	cartRepo        cart.Repository
	userRepo        identity.UserRepository
	urls            ImageURLer
	guard           requestGuard
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
	now             func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	cartRepo cart.Repository,
	userRepo identity.UserRepository,
	urls ImageURLer,
	idempotency shared.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		urls:      urls,
		guard:     requestGuard{store: idempotency, scope: "checkout", ttl: idempotencyTTL, logger: logger},
		logger:    logger,
		now:       time.Now,
	}
}

// SetBusinessMetrics sets the business metrics for recording order metrics
func (s *OrderService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// CheckoutDefaults returns the customer's address and phone with the cart summary
func (s *OrderService) CheckoutDefaults(ctx context.Context, customerID int64) (*CheckoutDefaults, error) {
	user, err := s.userRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lines, err := s.cartRepo.FindLines(ctx, cart.SessionKey(customerID))
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, trade.ErrEmptyCart
	}
	return &CheckoutDefaults{
		DeliveryAddress: user.Address,
		Phone:           user.Phone,
		Cart:            appcart.ToCartResponse(lines),
	}, nil
}

// Checkout turns the customer's cart into a pending order.
// Order, items, stock movements and clearing the cart commit together.
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (result *OrderResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "checkout")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrCustomerID, input.CustomerID)

	if input.IsAdmin {
		return nil, ErrAdminCheckout
	}

	release, err := s.guard.claim(ctx, input.CustomerID, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			release()
			telemetry.RecordError(span, err)
		}
	}()

	session := cart.SessionKey(input.CustomerID)
	lines, err := s.cartRepo.FindLines(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, trade.ErrEmptyCart
	}

	delivery := trade.Delivery{Address: input.DeliveryAddress, Phone: input.Phone, Notes: input.Notes}
	order, err := s.placeWithFreshNumber(ctx, input.CustomerID, lines, delivery)
	if err != nil {
		return nil, err
	}

	s.recordMetrics(ctx, order)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, order.ID,
		telemetry.SpanAttrOrderNumber, order.OrderNumber,
		telemetry.SpanAttrItemCount, len(order.Items),
	)
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int64("customer_id", order.CustomerID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) placeWithFreshNumber(ctx context.Context, customerID int64, lines []cart.Line, d trade.Delivery) (*trade.Order, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := trade.NewOrderNumber(s.now())
		taken, err := s.orderRepo.ExistsByOrderNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		order, err := trade.NewOrderFromCart(customerID, number, lines, d)
		if err != nil {
			return nil, err
		}
		err = s.orderRepo.PlaceOrder(ctx, order, cart.SessionKey(customerID))
		if errors.Is(err, shared.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return order, nil
	}
	return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Could not allocate an order number, please retry")
}

func (s *OrderService) recordMetrics(ctx context.Context, order *trade.Order) {
	if s.businessMetrics == nil {
		return
	}
	s.businessMetrics.RecordOrderPlaced(ctx, order.TotalAmount)
	for _, it := range order.ProductItems() {
		s.businessMetrics.RecordStockMovement(ctx, inventory.TransactionTypeSale.String(), -it.Quantity)
	}
}

// History lists the customer's orders, newest first
func (s *OrderService) History(ctx context.Context, customerID int64) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return lo.Map(orders, func(o trade.Order, _ int) OrderResponse {
		return ToOrderResponse(&o)
	}), nil
}

// Detail returns one of the customer's orders with its items.
// Orders of other customers are reported as not found.
func (s *OrderService) Detail(ctx context.Context, customerID, orderID int64) (*OrderResponse, error) {
	detail, err := s.orderRepo.FindDetailForCustomer(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderDetailResponse(detail, s.urls)
	return &resp, nil
}

// AdminList lists every order with its customer, newest first
func (s *OrderService) AdminList(ctx context.Context) ([]OrderResponse, error) {
	summaries, err := s.orderRepo.FindAllWithCustomer(ctx, 0)
	if err != nil {
		return nil, err
	}
	return lo.Map(summaries, func(o trade.OrderSummary, _ int) OrderResponse {
		return ToOrderSummaryResponse(o)
	}), nil
}

// UpdateStatus moves an existing order to a new status
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.SetStatus(trade.OrderStatus(status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status); err != nil {
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", order.Status.String()),
	)
	resp := ToOrderResponse(order)
	return &resp, nil
}
