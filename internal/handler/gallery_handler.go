package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/service"
)

// GalleryHandler gallery HTTP handlers
type GalleryHandler struct {
	service service.GalleryService
}

// NewGalleryHandler constructor
func NewGalleryHandler(svc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: svc}
}

// List godoc
// @Summary      List gallery images
// @Description  Returns gallery images filtered by search and category
// @Tags         gallery
// @Produce      json
// @Param        search    query  string  false  "Search term"
// @Param        category  query  string  false  "Category filter"
// @Success      200  {object}  common.APIResponse{data=[]domain.GalleryImageResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	var req domain.ListGalleryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	common.SuccessResponse(c, h.service.List(&req, viewerID(c)), nil)
}

// Like godoc
// @Summary      Toggle like on a gallery image
// @Tags         gallery
// @Produce      json
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  common.APIResponse{data=domain.GalleryImageResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /gallery/{id}/like [post]
func (h *GalleryHandler) Like(c *gin.Context) {
	image, err := h.service.Like(c.Param("id"), viewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Gallery image not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like image", err)
		return
	}

	common.SuccessResponse(c, image, nil)
}

// Categories godoc
// @Summary      List gallery categories
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /gallery/categories [get]
func (h *GalleryHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.service.Categories(), nil)
}
