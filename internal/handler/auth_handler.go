package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/pkg/i18n"
)

// AuthHandler registration, login and profile HTTP handlers
type AuthHandler struct {
	service service.AuthService
	bundle  *i18n.Bundle
}

// NewAuthHandler constructor
func NewAuthHandler(svc service.AuthService, bundle *i18n.Bundle) *AuthHandler {
	return &AuthHandler{service: svc, bundle: bundle}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.RegisterRequest  true  "Registration"
// @Success      201  {object}  common.APIResponse{data=domain.AuthResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "An account with this email already exists", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login godoc
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.LoginRequest  true  "Credentials"
// @Success      200  {object}  common.APIResponse{data=domain.AuthResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	locale := middleware.GetLocale(c)
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, h.bundle.T(locale, "auth.login_failed"), err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to sign in", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Logout godoc
// @Summary      Sign out
// @Description  Sessions are stateless JWT; the client discards the token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	locale := middleware.GetLocale(c)
	common.SuccessResponse(c, gin.H{"message": h.bundle.T(locale, "auth.logout_success")}, nil)
}

// Profile godoc
// @Summary      Get the signed-in member's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Failure      401  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.service.GetProfile(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// UpdateProfile godoc
// @Summary      Update the signed-in member's profile
// @Description  Applies only the fields present in the request
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.UpdateProfileRequest  true  "Profile changes"
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// ToggleFavorite godoc
// @Summary      Toggle a favorite dish
// @Description  Adds the menu item to favorites, or removes it if already there
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Menu item ID"
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Failure      401  {object}  common.APIResponse
// @Router       /profile/favorites/{id} [post]
func (h *AuthHandler) ToggleFavorite(c *gin.Context) {
	user, err := h.service.ToggleFavorite(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update favorites", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// Orders godoc
// @Summary      List the signed-in member's orders
// @Description  Returns the member's order history, newest first
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Order}
// @Failure      401  {object}  common.APIResponse
// @Router       /profile/orders [get]
func (h *AuthHandler) Orders(c *gin.Context) {
	orders, err := h.service.OrderHistory(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	common.SuccessResponse(c, orders, nil)
}
