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

// CommunityHandler forum, poll and showcase HTTP handlers
type CommunityHandler struct {
	service service.CommunityService
	auth    service.AuthService
	bundle  *i18n.Bundle
}

// NewCommunityHandler constructor
func NewCommunityHandler(svc service.CommunityService, auth service.AuthService, bundle *i18n.Bundle) *CommunityHandler {
	return &CommunityHandler{service: svc, auth: auth, bundle: bundle}
}

// viewerID identifies the viewer for reaction and vote tracking.
// Signed-in members react under their account, guests under their session.
func viewerID(c *gin.Context) string {
	if userID := middleware.GetUserID(c); userID != "" {
		return userID
	}
	return middleware.GetSessionID(c)
}

// author resolves the display identity for a new post
func (h *CommunityHandler) author(c *gin.Context) domain.Author {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return domain.Author{Name: "Guest"}
	}
	user, err := h.auth.GetProfile(userID)
	if err != nil {
		return domain.Author{Name: middleware.GetUserName(c)}
	}
	return domain.Author{Name: user.Name, Avatar: user.Avatar, Level: string(user.Level)}
}

// ListPosts godoc
// @Summary      List forum posts
// @Description  Returns forum posts, newest first, filtered by search and category
// @Tags         community
// @Produce      json
// @Param        search    query  string  false  "Search term"
// @Param        category  query  string  false  "Category filter"
// @Success      200  {object}  common.APIResponse{data=[]domain.ForumPostResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	var req domain.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	common.SuccessResponse(c, h.service.ListPosts(&req, viewerID(c)), nil)
}

// CreatePost godoc
// @Summary      Create a forum post
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreatePostRequest  true  "New post"
// @Success      201  {object}  common.APIResponse{data=domain.ForumPostResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post := h.service.CreatePost(c.Request.Context(), viewerID(c), h.author(c), &req)
	common.CreatedResponse(c, post)
}

// LikePost godoc
// @Summary      Toggle like on a forum post
// @Description  Likes the post, or removes the like if already liked. Clears a dislike.
// @Tags         community
// @Produce      json
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object}  common.APIResponse{data=domain.ForumPostResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /community/posts/{id}/like [post]
func (h *CommunityHandler) LikePost(c *gin.Context) {
	post, err := h.service.LikePost(c.Param("id"), viewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// DislikePost godoc
// @Summary      Toggle dislike on a forum post
// @Description  Dislikes the post, or removes the dislike if already disliked. Clears a like.
// @Tags         community
// @Produce      json
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object}  common.APIResponse{data=domain.ForumPostResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /community/posts/{id}/dislike [post]
func (h *CommunityHandler) DislikePost(c *gin.Context) {
	post, err := h.service.DislikePost(c.Param("id"), viewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to dislike post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// ListPolls godoc
// @Summary      List polls
// @Tags         community
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.PollResponse}
// @Router       /community/polls [get]
func (h *CommunityHandler) ListPolls(c *gin.Context) {
	common.SuccessResponse(c, h.service.ListPolls(viewerID(c)), nil)
}

// Vote godoc
// @Summary      Vote on a poll
// @Description  Records one vote per viewer per poll
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Poll ID"
// @Param        request  body  domain.VotePollRequest  true  "Vote"
// @Success      200  {object}  common.APIResponse{data=domain.PollResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /community/polls/{id}/vote [post]
func (h *CommunityHandler) Vote(c *gin.Context) {
	locale := middleware.GetLocale(c)
	var req domain.VotePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	poll, err := h.service.Vote(c.Request.Context(), c.Param("id"), viewerID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPollNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Poll not found", err)
		case errors.Is(err, service.ErrOptionNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Poll option not found", err)
		case errors.Is(err, service.ErrAlreadyVoted):
			common.ErrorResponse(c, http.StatusConflict, h.bundle.T(locale, "community.already_voted"), err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to record vote", err)
		}
		return
	}

	common.SuccessResponse(c, poll, nil)
}

// ListShowcase godoc
// @Summary      List showcase posts
// @Tags         community
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.ShowcaseResponse}
// @Router       /community/showcase [get]
func (h *CommunityHandler) ListShowcase(c *gin.Context) {
	common.SuccessResponse(c, h.service.ListShowcase(viewerID(c)), nil)
}

// LikeShowcase godoc
// @Summary      Toggle like on a showcase post
// @Tags         community
// @Produce      json
// @Param        id  path  string  true  "Showcase post ID"
// @Success      200  {object}  common.APIResponse{data=domain.ShowcaseResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /community/showcase/{id}/like [post]
func (h *CommunityHandler) LikeShowcase(c *gin.Context) {
	post, err := h.service.LikeShowcase(c.Param("id"), viewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Showcase post not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like showcase post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// Categories godoc
// @Summary      List forum categories
// @Tags         community
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /community/categories [get]
func (h *CommunityHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.service.Categories(), nil)
}
