package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	"github.com/CRT1223/tech13-garage/internal/application/storefront"
	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the public pages of the shop
type StorefrontHandler struct {
	BaseHandler
	pages      *storefront.Service
	categories *appcatalog.CategoryService
	products   *appcatalog.ProductService
	services   *appcatalog.WorkshopService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(
	pages *storefront.Service,
	categories *appcatalog.CategoryService,
	products *appcatalog.ProductService,
	services *appcatalog.WorkshopService,
) *StorefrontHandler {
	return &StorefrontHandler{
		pages:      pages,
		categories: categories,
		products:   products,
		services:   services,
	}
}

// Home returns featured products, categories, services and awards
func (h *StorefrontHandler) Home(c *gin.Context) {
	home, err := h.pages.Home(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, home)
}

// About returns the team and partner teams
func (h *StorefrontHandler) About(c *gin.Context) {
	about, err := h.pages.About(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, about)
}

// Categories lists all categories by name
func (h *StorefrontHandler) Categories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

// Products lists in-stock products.
// Query: category (ID), type (racing|daily), search
// A category that is not a positive ID matches nothing.
func (h *StorefrontHandler) Products(c *gin.Context) {
	category := c.Query("category")
	categoryID := queryID(category)
	if category != "" && categoryID == nil {
		h.Success(c, []appcatalog.ProductResponse{})
		return
	}

	products, err := h.products.Browse(c.Request.Context(), appcatalog.BrowseProductsQuery{
		CategoryID: categoryID,
		Type:       c.Query("type"),
		Search:     c.Query("search"),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// ProductDetail returns a product with related parts and reviews
func (h *StorefrontHandler) ProductDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id", "product")
	if !ok {
		return
	}
	detail, err := h.products.Detail(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, detail)
}

// Services lists workshop services, optionally filtered by type
func (h *StorefrontHandler) Services(c *gin.Context) {
	services, err := h.services.Browse(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, services)
}

// ServiceDetail returns a workshop service with its reviews
func (h *StorefrontHandler) ServiceDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id", "service")
	if !ok {
		return
	}
	detail, err := h.services.Detail(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, detail)
}
