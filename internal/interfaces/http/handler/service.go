package handler

import (
	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ServiceRequest is the admin workshop service form
type ServiceRequest struct {
	Name          string  `json:"name" form:"name" binding:"required,min=1,max=200"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price" binding:"required,gt=0"`
	DurationHours int     `json:"duration_hours" form:"duration_hours" binding:"gte=0"`
	IsRacing      bool    `json:"is_racing" form:"is_racing"`
	IsDaily       *bool   `json:"is_daily" form:"is_daily"`
}

func (r ServiceRequest) toInput() appcatalog.ServiceRequest {
	return appcatalog.ServiceRequest{
		Name:          r.Name,
		Description:   r.Description,
		Price:         toDecimal(r.Price),
		DurationHours: r.DurationHours,
		IsRacing:      r.IsRacing,
		IsDaily:       boolOr(r.IsDaily, true),
	}
}

// ServiceHandler handles the admin workshop service pages
type ServiceHandler struct {
	BaseHandler
	services *appcatalog.WorkshopService
}

// NewServiceHandler creates a new workshop service handler
func NewServiceHandler(services *appcatalog.WorkshopService) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// List returns every service by name
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.Browse(c.Request.Context(), "")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id", "service")
	if !ok {
		return
	}
	svc, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	image, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(image)

	svc, err := h.services.Create(c.Request.Context(), req.toInput(), image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "service")
	if !ok {
		return
	}
	var req ServiceRequest
	image, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(image)

	svc, err := h.services.Update(c.Request.Context(), id, req.toInput(), image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, svc)
}

// UpdateImage replaces only the image of a service
func (h *ServiceHandler) UpdateImage(c *gin.Context) {
	id, ok := h.parseID(c, "id", "service")
	if !ok {
		return
	}
	image, ok := h.requiredFile(c, "image", "No image file provided")
	if !ok {
		return
	}
	defer closeFile(image)

	result, err := h.services.UpdateImage(c.Request.Context(), id, *image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Uploaded(c, "Service image updated successfully", result.ImageURL)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "service")
	if !ok {
		return
	}
	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Service deleted successfully")
}
