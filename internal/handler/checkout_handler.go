package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/flow"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/internal/store"
	"github.com/kedaimae/kedai-backend/pkg/i18n"
)

// CheckoutHandler checkout flow HTTP handlers
type CheckoutHandler struct {
	service service.CheckoutService
	bundle  *i18n.Bundle
}

// NewCheckoutHandler constructor
func NewCheckoutHandler(svc service.CheckoutService, bundle *i18n.Bundle) *CheckoutHandler {
	return &CheckoutHandler{service: svc, bundle: bundle}
}

// Options godoc
// @Summary      List delivery options and payment methods
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /checkout/options [get]
func (h *CheckoutHandler) Options(c *gin.Context) {
	delivery, payments := h.service.Options()
	common.SuccessResponse(c, gin.H{
		"delivery_options": delivery,
		"payment_methods":  payments,
	}, nil)
}

// State godoc
// @Summary      Get the checkout state
// @Description  Returns the session's current checkout step and derived totals
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutStateResponse}
// @Router       /checkout [get]
func (h *CheckoutHandler) State(c *gin.Context) {
	state := h.service.State(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, state, nil)
}

// Begin godoc
// @Summary      Start checkout
// @Description  Moves the session from the cart step to the checkout step. Requires a non-empty cart.
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutStateResponse}
// @Failure      422  {object}  common.APIResponse
// @Router       /checkout/begin [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	locale := middleware.GetLocale(c)
	state, err := h.service.Begin(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, store.ErrCartEmpty) {
			common.ErrorResponse(c, http.StatusUnprocessableEntity, h.bundle.T(locale, "cart.empty"), err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to start checkout", err)
		return
	}

	common.SuccessResponse(c, state, nil)
}

// SubmitDetails godoc
// @Summary      Submit checkout details
// @Description  Records delivery option and contact details for the session's checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CheckoutDetailsRequest  true  "Checkout details"
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutStateResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /checkout/details [post]
func (h *CheckoutHandler) SubmitDetails(c *gin.Context) {
	locale := middleware.GetLocale(c)
	var req domain.CheckoutDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, h.bundle.T(locale, "checkout.missing_fields"), err)
		return
	}

	state, err := h.service.SubmitDetails(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheckoutNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Checkout has not been started", err)
		case errors.Is(err, service.ErrUnknownDeliveryOption):
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown delivery option", err)
		case errors.Is(err, service.ErrAddressRequired):
			common.ErrorResponse(c, http.StatusBadRequest, h.bundle.T(locale, "checkout.missing_address"), err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to submit details", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// ApplyPromo godoc
// @Summary      Apply a promo code at checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  domain.ApplyDiscountRequest  true  "Promo code"
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutStateResponse}
// @Failure      422  {object}  common.APIResponse
// @Router       /checkout/promo [post]
func (h *CheckoutHandler) ApplyPromo(c *gin.Context) {
	locale := middleware.GetLocale(c)
	var req domain.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state, err := h.service.ApplyPromo(c.Request.Context(), middleware.GetSessionID(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPromoCode):
			common.ErrorResponse(c, http.StatusUnprocessableEntity, h.bundle.T(locale, "cart.invalid_code"), err)
		case errors.Is(err, store.ErrMinOrderNotMet):
			common.ErrorResponse(c, http.StatusUnprocessableEntity, "Minimum order amount not met", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to apply promo code", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// PlaceOrder godoc
// @Summary      Place the order
// @Description  Submits the order and advances to the confirmation step. The cart is cleared shortly after.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  domain.PlaceOrderRequest  true  "Payment selection"
// @Success      201  {object}  common.APIResponse{data=domain.OrderConfirmation}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /checkout/order [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req domain.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	userID := middleware.GetUserID(c)
	confirmation, err := h.service.PlaceOrder(c.Request.Context(), sessionID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheckoutNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Checkout has not been started", err)
		case errors.Is(err, service.ErrDetailsIncomplete):
			common.ErrorResponse(c, http.StatusConflict, "Checkout details have not been submitted", err)
		case errors.Is(err, service.ErrUnknownPaymentMethod):
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown payment method", err)
		case errors.Is(err, service.ErrOrderAlreadyPlaced):
			common.ErrorResponse(c, http.StatusConflict, "Order has already been placed", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to place order", err)
		}
		return
	}

	middleware.CountOrderPlaced()
	common.CreatedResponse(c, confirmation)
}

// Back godoc
// @Summary      Step back in the checkout flow
// @Description  Returns to the previous step. Not allowed once the order is confirmed.
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutStateResponse}
// @Failure      409  {object}  common.APIResponse
// @Router       /checkout/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	state, err := h.service.Back(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheckoutNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Checkout has not been started", err)
		case errors.Is(err, flow.ErrAtStart):
			common.ErrorResponse(c, http.StatusConflict, "Already at the first step", err)
		case errors.Is(err, flow.ErrAtTerminal):
			common.ErrorResponse(c, http.StatusConflict, "Order is already confirmed", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to step back", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// Abandon godoc
// @Summary      Abandon the checkout
// @Description  Discards the session's checkout progress. The cart is kept.
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /checkout [delete]
func (h *CheckoutHandler) Abandon(c *gin.Context) {
	h.service.Abandon(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, gin.H{"abandoned": true}, nil)
}
