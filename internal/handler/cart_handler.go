package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/internal/store"
	"github.com/kedaimae/kedai-backend/pkg/i18n"
)

// CartHandler session cart HTTP handlers
type CartHandler struct {
	service service.CartService
	bundle  *i18n.Bundle
}

// NewCartHandler constructor
func NewCartHandler(svc service.CartService, bundle *i18n.Bundle) *CartHandler {
	return &CartHandler{service: svc, bundle: bundle}
}

// Get godoc
// @Summary      Get the cart
// @Description  Returns the session cart with derived totals
// @Tags         cart
// @Accept       json
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Router       /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.service.Get(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, cart, nil)
}

// AddItem godoc
// @Summary      Add an item to the cart
// @Description  Adds a menu item to the session cart. Adding an item already in the cart increases its quantity.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request  body  domain.AddItemRequest  true  "Add item request"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Menu item not found", err)
		case errors.Is(err, service.ErrMenuItemUnavailable):
			common.ErrorResponse(c, http.StatusBadRequest, "Menu item is not available", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to add item", err)
		}
		return
	}

	common.SuccessResponse(c, cart, nil)
}

// UpdateQuantity godoc
// @Summary      Update item quantity
// @Description  Sets the quantity of a cart item. Zero or negative removes the item.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Menu item ID"
// @Param        request  body  domain.UpdateQuantityRequest  true  "Quantity"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req domain.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cart := h.service.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), &req)
	common.SuccessResponse(c, cart, nil)
}

// RemoveItem godoc
// @Summary      Remove an item from the cart
// @Description  Removes a cart item. Removing an absent item is a no-op.
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "Menu item ID"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart := h.service.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	common.SuccessResponse(c, cart, nil)
}

// Clear godoc
// @Summary      Clear the cart
// @Description  Removes every item and any applied discount
// @Tags         cart
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Router       /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	cart := h.service.Clear(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, cart, nil)
}

// ApplyDiscount godoc
// @Summary      Apply a discount code
// @Description  Applies a discount code to the cart. A new code replaces any previous one.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request  body  domain.ApplyDiscountRequest  true  "Discount code"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      422  {object}  common.APIResponse
// @Router       /cart/discount [post]
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var req domain.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	locale := middleware.GetLocale(c)
	cart, err := h.service.ApplyDiscount(c.Request.Context(), middleware.GetSessionID(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidDiscountCode):
			common.ErrorResponse(c, http.StatusUnprocessableEntity, h.bundle.T(locale, "cart.invalid_code"), err)
		case errors.Is(err, store.ErrMinOrderNotMet):
			common.ErrorResponse(c, http.StatusUnprocessableEntity, "Minimum order amount not met", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to apply discount", err)
		}
		return
	}

	common.SuccessResponse(c, cart, nil)
}

// RemoveDiscount godoc
// @Summary      Remove the applied discount
// @Tags         cart
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Router       /cart/discount [delete]
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	cart := h.service.RemoveDiscount(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, cart, nil)
}
