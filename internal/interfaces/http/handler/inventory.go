package handler

import (
	appinventory "github.com/CRT1223/tech13-garage/internal/application/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/gin-gonic/gin"
)

// defaultTransactionsLimit is how many ledger entries are listed without a product filter
const defaultTransactionsLimit = 50

// RestockRequest adds delivered units to a product
type RestockRequest struct {
	ProductID int64  `json:"product_id" form:"product_id" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"required,gt=0"`
	Notes     string `json:"notes" form:"notes" binding:"max=500"`
}

// AdjustRequest records a signed stock correction or a customer return
type AdjustRequest struct {
	ProductID int64  `json:"product_id" form:"product_id" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"required,ne=0"`
	Type      string `json:"type" form:"type" binding:"omitempty,oneof=adjustment return"`
	Notes     string `json:"notes" form:"notes" binding:"max=500"`
}

// InventoryHandler handles stock levels and the inventory ledger
type InventoryHandler struct {
	BaseHandler
	stock *appinventory.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(stock *appinventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{stock: stock}
}

// Summary returns every product with its stock and units sold
func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.stock.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}

// Restock godoc
// @Summary      Restock a product
// @Tags         admin-inventory
// @Accept       json
// @Produce      json
// @Param        request body RestockRequest true "Restock"
// @Success      201 {object} dto.Response{data=appinventory.TransactionResponse}
// @Failure      404 {object} dto.Response
// @Router       /admin/inventory/restock [post]
func (h *InventoryHandler) Restock(c *gin.Context) {
	adminID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req RestockRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	entry, err := h.stock.Restock(c.Request.Context(), appinventory.RestockInput{
		AdminID:   adminID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// Adjust applies a signed correction. Stock may not drop below zero.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	adminID, _, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req AdjustRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	if req.Type == "" {
		req.Type = string(inventory.TransactionTypeAdjustment)
	}

	entry, err := h.stock.Adjust(c.Request.Context(), appinventory.AdjustInput{
		AdminID:   adminID,
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// Transactions lists ledger entries.
// Query: product_id for one product's history, otherwise limit (default 50)
func (h *InventoryHandler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := c.Query("product_id"); raw != "" {
		productID := queryID(raw)
		if productID == nil {
			h.Success(c, []appinventory.TransactionResponse{})
			return
		}
		history, err := h.stock.History(ctx, *productID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, history)
		return
	}

	limit, ok := queryInt(c.Query("limit"))
	if !ok || limit <= 0 {
		limit = defaultTransactionsLimit
	}
	recent, err := h.stock.Recent(ctx, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, recent)
}
