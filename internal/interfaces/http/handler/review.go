package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// AddReviewRequest rates a product or a workshop service
type AddReviewRequest struct {
	ProductID *int64 `json:"product_id" form:"product_id" binding:"omitempty,gt=0"`
	ServiceID *int64 `json:"service_id" form:"service_id" binding:"omitempty,gt=0"`
	Rating    int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" form:"comment" binding:"max=2000"`
}

// ReviewHandler handles customer reviews
type ReviewHandler struct {
	BaseHandler
	reviews *appcatalog.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *appcatalog.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create stores a review written by the logged-in customer
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, isAdmin, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	review, err := h.reviews.AddReview(c.Request.Context(), appcatalog.AddReviewInput{
		CustomerID: userID,
		IsAdmin:    isAdmin,
		ProductID:  req.ProductID,
		ServiceID:  req.ServiceID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, review)
}

// ListForProduct returns the reviews of a product
func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	id, ok := h.parseID(c, "id", "product")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListForProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, reviews)
}
