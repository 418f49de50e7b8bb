package cart

import (
	"context"
	"errors"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrAdminCart is returned when an administrator uses the cart
var ErrAdminCart = shared.NewDomainError(shared.ErrForbidden.Code, "Administrators cannot add items to cart. Please use a customer account.")

// CartService handles the customer's shopping cart
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	serviceRepo catalog.ServiceRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	serviceRepo catalog.ServiceRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Add puts a product or service in the cart, merging with an identical line
func (s *CartService) Add(ctx context.Context, caller Caller, req AddItemRequest) (*CartResponse, error) {
	session, err := sessionFor(caller)
	if err != nil {
		return nil, err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	item, err := cart.NewItem(session, req.ProductID, req.ServiceID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, item); err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindMatching(ctx, session, item.ProductID, item.ServiceID, item.ItemType)
	switch {
	case err == nil:
		if err := s.cartRepo.AddQuantity(ctx, existing.ID, item.Quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.logger.Debug("Cart item added",
		zap.Int64("user_id", caller.UserID),
		zap.String("item_type", string(item.ItemType)),
		zap.Int("quantity", item.Quantity),
	)
	return s.View(ctx, caller)
}

// View returns the cart lines, newest first, with the subtotal
func (s *CartService) View(ctx context.Context, caller Caller) (*CartResponse, error) {
	session, err := sessionFor(caller)
	if err != nil {
		return nil, err
	}
	lines, err := s.cartRepo.FindLines(ctx, session)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(lines), nil
}

// UpdateQuantity sets the quantity of one of the caller's lines
func (s *CartService) UpdateQuantity(ctx context.Context, caller Caller, cartID int64, quantity int) (*CartResponse, error) {
	session, err := sessionFor(caller)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, shared.InvalidInput("Quantity must be at least 1")
	}
	if err := s.cartRepo.SetQuantity(ctx, session, cartID, quantity); err != nil {
		return nil, err
	}
	return s.View(ctx, caller)
}

// Remove deletes one of the caller's lines
func (s *CartService) Remove(ctx context.Context, caller Caller, cartID int64) (*CartResponse, error) {
	session, err := sessionFor(caller)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Delete(ctx, session, cartID); err != nil {
		return nil, err
	}
	return s.View(ctx, caller)
}

// Clear empties the caller's cart
func (s *CartService) Clear(ctx context.Context, caller Caller) error {
	session, err := sessionFor(caller)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(ctx, session)
}

func (s *CartService) ensureExists(ctx context.Context, item *cart.Item) error {
	if item.ProductID != nil {
		_, err := s.productRepo.FindByID(ctx, *item.ProductID)
		return err
	}
	_, err := s.serviceRepo.FindByID(ctx, *item.ServiceID)
	return err
}

func sessionFor(caller Caller) (string, error) {
	if caller.IsAdmin {
		return "", ErrAdminCart
	}
	if caller.UserID <= 0 {
		return "", shared.ErrUnauthorized
	}
	return cart.SessionKey(caller.UserID), nil
}
