package handler

import (
	appidentity "github.com/CRT1223/tech13-garage/internal/application/identity"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CustomerHandler lists registered customers for admins
type CustomerHandler struct {
	BaseHandler
	users *appidentity.UserService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(users *appidentity.UserService) *CustomerHandler {
	return &CustomerHandler{users: users}
}

// List godoc
// @Summary      List customers
// @Description  Registered customers, newest first
// @Tags         admin-customers
// @Produce      json
// @Param        page      query int    false "Page number"  default(1)
// @Param        page_size query int    false "Page size"    default(20)
// @Param        search    query string false "Username, email or name"
// @Success      200 {object} dto.Response{data=[]UserResponse,meta=dto.Meta}
// @Router       /admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	page, err := h.users.ListCustomers(c.Request.Context(), appidentity.CustomerListInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	customers := lo.Map(page.Items, func(u appidentity.UserInfo, _ int) UserResponse {
		return toUserResponse(u)
	})
	h.SuccessWithMeta(c, customers, page.Total, page.Page, page.PageSize)
}
