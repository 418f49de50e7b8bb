package handler

import (
	apptrade "github.com/CRT1223/tech13-garage/internal/application/trade"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the checkout form
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" form:"delivery_address" binding:"required,max=500"`
	Phone           string `json:"phone" form:"phone" binding:"required,max=20"`
	Notes           string `json:"notes" form:"notes" binding:"max=1000"`
}

// UpdateOrderStatusRequest moves an order to a new status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=pending processing shipped completed cancelled"`
}

// OrderHandler handles checkout and order history
type OrderHandler struct {
	BaseHandler
	orders *apptrade.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *apptrade.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CheckoutDefaults returns the cart with the delivery details from the profile
func (h *OrderHandler) CheckoutDefaults(c *gin.Context) {
	userID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	defaults, err := h.orders.CheckoutDefaults(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, defaults)
}

// Checkout godoc
// @Summary      Place an order
// @Description  Converts the cart into an order. Send an Idempotency-Key header to make retries safe.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CheckoutRequest true "Delivery details"
// @Success      201 {object} dto.Response{data=apptrade.OrderResponse}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, isAdmin, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), apptrade.CheckoutInput{
		CustomerID:      userID,
		IsAdmin:         isAdmin,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Notes:           req.Notes,
		IdempotencyKey:  middleware.GetIdempotencyKey(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// History lists the caller's orders, newest first
func (h *OrderHandler) History(c *gin.Context) {
	userID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	orders, err := h.orders.History(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}

// Detail returns one of the caller's orders with its lines
func (h *OrderHandler) Detail(c *gin.Context) {
	userID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id", "order")
	if !ok {
		return
	}
	order, err := h.orders.Detail(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// AdminList lists every order with its customer
func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.orders.AdminList(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}

// UpdateStatus sets an order's status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c, "id", "order")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}
