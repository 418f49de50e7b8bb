package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	apptrade "github.com/CRT1223/tech13-garage/internal/application/trade"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// WalkInLineRequest is one product on the walk-in form.
// Lines with a non-positive quantity are skipped by the service, not rejected.
type WalkInLineRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

// WalkInSaleRequest is the walk-in sale form
type WalkInSaleRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required,max=100"`
	CustomerPhone string              `json:"customer_phone" binding:"max=20"`
	PaymentMethod string              `json:"payment_method" binding:"omitempty,oneof=cash card other"`
	Notes         string              `json:"notes" binding:"max=1000"`
	Items         []WalkInLineRequest `json:"items" binding:"dive"`
}

// WalkInHandler handles over-the-counter sales
type WalkInHandler struct {
	BaseHandler
	sales    *apptrade.WalkInService
	products *appcatalog.ProductService
}

// NewWalkInHandler creates a new walk-in sale handler
func NewWalkInHandler(sales *apptrade.WalkInService, products *appcatalog.ProductService) *WalkInHandler {
	return &WalkInHandler{sales: sales, products: products}
}

// List returns all walk-in sales, newest first
func (h *WalkInHandler) List(c *gin.Context) {
	sales, err := h.sales.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sales)
}

// Products lists the in-stock products the counter can sell
func (h *WalkInHandler) Products(c *gin.Context) {
	products, err := h.products.InStockForSale(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Create godoc
// @Summary      Record a walk-in sale
// @Description  Lines with a non-positive quantity, an unknown product or too little stock are skipped and listed in the response
// @Tags         admin-walkin
// @Accept       json
// @Produce      json
// @Param        request body WalkInSaleRequest true "Sale"
// @Success      201 {object} dto.Response{data=apptrade.WalkInSaleResult}
// @Failure      400 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /admin/walkin-sales [post]
func (h *WalkInHandler) Create(c *gin.Context) {
	adminID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req WalkInSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.sales.Create(c.Request.Context(), apptrade.WalkInSaleInput{
		AdminID:       adminID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Lines: lo.Map(req.Items, func(l WalkInLineRequest, _ int) apptrade.WalkInLineInput {
			return apptrade.WalkInLineInput{ProductID: l.ProductID, Quantity: l.Quantity}
		}),
		IdempotencyKey: middleware.GetIdempotencyKey(c),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// Detail returns a walk-in sale with its items and the admin who recorded it
func (h *WalkInHandler) Detail(c *gin.Context) {
	id, ok := h.parseID(c, "id", "sale")
	if !ok {
		return
	}
	sale, err := h.sales.Detail(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sale)
}
