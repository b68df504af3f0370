package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// RecruiterHandler recruiter profile endpoints
type RecruiterHandler struct {
	recruiterSvc service.RecruiterService
}

// NewRecruiterHandler creates a RecruiterHandler
func NewRecruiterHandler(recruiterSvc service.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{recruiterSvc: recruiterSvc}
}

// CreateRecruiter attaches a blank profile to the user
// POST /recruiters
func (h *RecruiterHandler) CreateRecruiter(c *gin.Context) {
	var req dto.CreateRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	recruiter, created, err := h.recruiterSvc.Create(c.Request.Context(), req.UserID)
	if err != nil {
		h.handleRecruiterError(c, err)
		return
	}

	if created {
		response.CreatedWithMessage(c, "recruiter created", recruiter)
		return
	}
	response.OKWithMessage(c, "recruiter already exists", recruiter)
}

// GetRecruiter profile by user id
// GET /recruiters/:id
func (h *RecruiterHandler) GetRecruiter(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	recruiter, err := h.recruiterSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.handleRecruiterError(c, err)
		return
	}

	response.OK(c, recruiter)
}

// UpdateRecruiter partial profile update by user id
// PUT /recruiters/:id
func (h *RecruiterHandler) UpdateRecruiter(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	recruiter, err := h.recruiterSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleRecruiterError(c, err)
		return
	}

	response.OKWithMessage(c, "recruiter updated", recruiter)
}

func (h *RecruiterHandler) handleRecruiterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecruiterNotFound):
		response.ErrorWithData(c, http.StatusUnauthorized, 14001, err.Error(), dto.OnboardingRequired{
			Error:    "RECRUITER_NOT_FOUND",
			Redirect: onboardingRedirect,
		})
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 14002, err.Error())
	default:
		response.InternalError(c)
	}
}
