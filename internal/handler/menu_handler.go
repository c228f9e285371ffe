package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/pkg/ginutil"
)

// MenuHandler menu browsing HTTP handlers
type MenuHandler struct {
	menu service.MenuService
	auth service.AuthService
}

// NewMenuHandler constructor
func NewMenuHandler(menu service.MenuService, auth service.AuthService) *MenuHandler {
	return &MenuHandler{menu: menu, auth: auth}
}

// preferences loads the signed-in member's dietary profile so listings
// can carry allergen warnings. Guests browse without one.
func (h *MenuHandler) preferences(c *gin.Context) *domain.Preferences {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return nil
	}
	user, err := h.auth.GetProfile(userID)
	if err != nil {
		return nil
	}
	return &user.Preferences
}

// List godoc
// @Summary      List menu items
// @Description  Returns the menu filtered by search, category and dietary preferences
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        search    query  string  false  "Search term"
// @Param        category  query  string  false  "Category filter"
// @Param        dietary   query  []string  false  "Dietary filters"
// @Param        sort      query  string  false  "Sort key"
// @Success      200  {object}  common.APIResponse{data=domain.MenuListResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	var req domain.ListMenuRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	// dietary arrives comma-separated: ?dietary=vegan,gluten-free
	req.Dietary = ginutil.QueryList(c, "dietary")

	common.SuccessResponse(c, h.menu.List(c.Request.Context(), &req, h.preferences(c)), nil)
}

// Get godoc
// @Summary      Get a menu item
// @Description  Returns a single menu item by ID
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Menu item ID"
// @Success      200  {object}  common.APIResponse{data=domain.MenuItem}
// @Failure      404  {object}  common.APIResponse
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menu.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Menu item not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch menu item", err)
		return
	}

	common.SuccessResponse(c, item, nil)
}

// Categories godoc
// @Summary      List menu categories
// @Tags         menu
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /menu/categories [get]
func (h *MenuHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.menu.Categories(), nil)
}
