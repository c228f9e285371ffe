package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/pkg/ginutil"
)

// AdminHandler back-office HTTP handlers
type AdminHandler struct {
	service service.AdminService
	auth    service.AuthService
}

// NewAdminHandler constructor
func NewAdminHandler(svc service.AdminService, auth service.AuthService) *AdminHandler {
	return &AdminHandler{service: svc, auth: auth}
}

// Dashboard godoc
// @Summary      Admin dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.DashboardStats}
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}

	common.SuccessResponse(c, stats, nil)
}

// ListOrders godoc
// @Summary      List orders
// @Description  Returns orders, newest first, optionally filtered by status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Page size"    default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Order}
// @Failure      400  {object}  common.APIResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	orders, total, err := h.service.ListOrders(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid order status", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list orders", err)
		return
	}

	common.SuccessResponse(c, orders, &common.Meta{Page: page, Limit: limit, Total: total})
}

// ListUsers godoc
// @Summary      List members
// @Description  Returns members, optionally filtered by a name or email search
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Search on name or email"
// @Success      200  {object}  common.APIResponse{data=[]domain.User}
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users := h.auth.ListUsers(c.Query("q"))
	common.SuccessResponse(c, users, &common.Meta{Total: int64(len(users))})
}

// UpdateOrderStatus godoc
// @Summary      Update an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        number   path  string  true  "Order number"
// @Param        request  body  domain.UpdateOrderStatusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.Order}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/orders/{number}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req domain.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), c.Param("number"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, service.ErrInvalidStatus):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid order status", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update order", err)
		}
		return
	}

	common.SuccessResponse(c, order, nil)
}

// ToggleAvailability godoc
// @Summary      Toggle menu item availability
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "Menu item ID"
// @Param        request  body  domain.ToggleAvailabilityRequest  true  "Availability"
// @Success      200  {object}  common.APIResponse{data=domain.MenuItem}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/menu/{id}/availability [put]
func (h *AdminHandler) ToggleAvailability(c *gin.Context) {
	var req domain.ToggleAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.service.ToggleAvailability(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Menu item not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update availability", err)
		return
	}

	common.SuccessResponse(c, item, nil)
}

// Promotions godoc
// @Summary      List promo codes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.PromoCode}
// @Router       /admin/promotions [get]
func (h *AdminHandler) Promotions(c *gin.Context) {
	common.SuccessResponse(c, h.service.Promotions(), nil)
}

// TogglePromotion godoc
// @Summary      Activate or deactivate a promo code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code     path  string  true  "Promo code"
// @Param        request  body  domain.TogglePromotionRequest  true  "Activation"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/promotions/{code} [put]
func (h *AdminHandler) TogglePromotion(c *gin.Context) {
	var req domain.TogglePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.TogglePromotion(c.Param("code"), &req); err != nil {
		if errors.Is(err, service.ErrUnknownPromo) {
			common.ErrorResponse(c, http.StatusNotFound, "Promo code not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update promotion", err)
		return
	}

	common.SuccessResponse(c, gin.H{"code": c.Param("code"), "active": req.Active}, nil)
}
