package handler

import (
	appcart "github.com/CRT1223/tech13-garage/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds a product or a workshop service to the cart
type AddCartItemRequest struct {
	ProductID *int64 `json:"product_id" form:"product_id" binding:"omitempty,gt=0"`
	ServiceID *int64 `json:"service_id" form:"service_id" binding:"omitempty,gt=0"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"omitempty,gte=1,lte=99"`
}

// UpdateCartItemRequest sets a cart line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required,gte=1,lte=99"`
}

// CartHandler handles the shopping cart of the logged-in customer
type CartHandler struct {
	BaseHandler
	cart *appcart.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *appcart.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) caller(c *gin.Context) (appcart.Caller, bool) {
	userID, isAdmin, ok := h.currentUser(c)
	return appcart.Caller{UserID: userID, IsAdmin: isAdmin}, ok
}

// View returns the cart lines and subtotal
func (h *CartHandler) View(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	cart, err := h.cart.View(c.Request.Context(), caller)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Add puts an item in the cart or raises the quantity of an identical line
func (h *CartHandler) Add(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	cart, err := h.cart.Add(c.Request.Context(), caller, appcart.AddItemRequest{
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Update changes the quantity of one of the caller's lines
func (h *CartHandler) Update(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id", "cart item")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	cart, err := h.cart.UpdateQuantity(c.Request.Context(), caller, id, req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Remove deletes one of the caller's lines
func (h *CartHandler) Remove(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id", "cart item")
	if !ok {
		return
	}

	cart, err := h.cart.Remove(c.Request.Context(), caller, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}
