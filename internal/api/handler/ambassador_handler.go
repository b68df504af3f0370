package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// AmbassadorHandler campus ambassador profile endpoints
type AmbassadorHandler struct {
	ambassadorSvc service.AmbassadorService
}

// NewAmbassadorHandler creates an AmbassadorHandler
func NewAmbassadorHandler(ambassadorSvc service.AmbassadorService) *AmbassadorHandler {
	return &AmbassadorHandler{ambassadorSvc: ambassadorSvc}
}

// Register submits the ambassador application form
// POST /ambassador/register
func (h *AmbassadorHandler) Register(c *gin.Context) {
	var req dto.RegisterAmbassadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ambassador, err := h.ambassadorSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAmbassadorExists) {
			response.Conflict(c, 17002, err.Error(), ambassador)
			return
		}
		h.handleAmbassadorError(c, err)
		return
	}

	response.CreatedWithMessage(c, "registration successful", ambassador)
}

// GetProfile
// GET /ambassador/user?email=
func (h *AmbassadorHandler) GetProfile(c *gin.Context) {
	var req dto.AmbassadorProfileRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "email is required")
		return
	}

	profile, err := h.ambassadorSvc.GetProfile(c.Request.Context(), req.Email)
	if err != nil {
		h.handleAmbassadorError(c, err)
		return
	}

	response.OK(c, profile)
}

// UpdateProfile
// POST /ambassador/update
func (h *AmbassadorHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateAmbassadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	profile, err := h.ambassadorSvc.Update(c.Request.Context(), &req)
	if err != nil {
		h.handleAmbassadorError(c, err)
		return
	}

	response.OKWithMessage(c, "profile updated", profile)
}

// GetLeaderboard top ambassadors by points
// GET /ambassador/getLeaderboard
func (h *AmbassadorHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.ambassadorSvc.Leaderboard(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}

func (h *AmbassadorHandler) handleAmbassadorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAmbassadorNotFound):
		response.NotFound(c, 17001, err.Error())
	default:
		response.InternalError(c)
	}
}
