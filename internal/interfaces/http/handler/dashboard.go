package handler

import (
	"github.com/CRT1223/tech13-garage/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin overview
type DashboardHandler struct {
	BaseHandler
	dashboard *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: svc}
}

// Get returns the store counts, revenue, recent orders and low-stock products
func (h *DashboardHandler) Get(c *gin.Context) {
	resp, err := h.dashboard.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
