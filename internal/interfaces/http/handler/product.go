package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductRequest is the admin product form
type ProductRequest struct {
	Name          string  `json:"name" form:"name" binding:"required,min=1,max=200"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price" binding:"required,gt=0"`
	CategoryID    *int64  `json:"category_id" form:"category_id" binding:"omitempty,gt=0"`
	Brand         string  `json:"brand" form:"brand" binding:"max=100"`
	Model         string  `json:"model" form:"model" binding:"max=100"`
	YearRange     string  `json:"year_range" form:"year_range" binding:"max=50"`
	StockQuantity int     `json:"stock_quantity" form:"stock_quantity" binding:"gte=0"`
	IsRacing      bool    `json:"is_racing" form:"is_racing"`
	IsDaily       *bool   `json:"is_daily" form:"is_daily"`
}

func (r ProductRequest) toInput() appcatalog.ProductRequest {
	return appcatalog.ProductRequest{
		Name:          r.Name,
		Description:   r.Description,
		Price:         toDecimal(r.Price),
		CategoryID:    r.CategoryID,
		Brand:         r.Brand,
		Model:         r.Model,
		YearRange:     r.YearRange,
		StockQuantity: r.StockQuantity,
		IsRacing:      r.IsRacing,
		IsDaily:       boolOr(r.IsDaily, true),
	}
}

// ProductHandler handles the admin product pages
type ProductHandler struct {
	BaseHandler
	products *appcatalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List returns every product with its category name, newest first
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.AdminList(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Get returns a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id", "product")
	if !ok {
		return
	}
	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Create godoc
// @Summary      Create a product
// @Description  Accepts JSON or a multipart form with an optional image part
// @Tags         admin-products
// @Accept       json,mpfd
// @Produce      json
// @Param        request body ProductRequest true "Product"
// @Success      201 {object} dto.Response{data=appcatalog.ProductResponse}
// @Failure      400 {object} dto.Response
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	image, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(image)

	product, err := h.products.Create(c.Request.Context(), req.toInput(), image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Update replaces a product's fields. The image is kept unless a new one is sent.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "product")
	if !ok {
		return
	}
	var req ProductRequest
	image, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(image)

	product, err := h.products.Update(c.Request.Context(), id, req.toInput(), image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product that was never ordered
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "product")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Product deleted successfully")
}
