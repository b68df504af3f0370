package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// PostHandler job listing endpoints
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler creates a PostHandler
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// CreatePost
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	post, err := h.postSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.CreatedWithMessage(c, "post created", post)
}

// ListPosts newest first with recruiter and applications
// GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, posts)
}

// GetPost
// GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.postSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OK(c, post)
}

// UpdatePost full overwrite
// PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	post, err := h.postSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OKWithMessage(c, "post updated", post)
}

// DeletePost removes the post and its applications
// DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OKWithMessage(c, "post deleted", nil)
}

func (h *PostHandler) handlePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, service.ErrPostRecruiterNotFound):
		response.BadRequest(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}
