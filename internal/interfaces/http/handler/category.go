package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryRequest is the admin category form
type CategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" form:"description"`
}

// CategoryHandler handles the admin category pages
type CategoryHandler struct {
	BaseHandler
	categories *appcatalog.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories *appcatalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id", "category")
	if !ok {
		return
	}
	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	category, err := h.categories.Create(c.Request.Context(), appcatalog.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "category")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	category, err := h.categories.Update(c.Request.Context(), id, appcatalog.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete refuses categories that still have products
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "category")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Category deleted successfully")
}
