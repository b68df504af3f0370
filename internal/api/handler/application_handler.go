package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// ApplicationHandler student application endpoints
type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

// NewApplicationHandler creates an ApplicationHandler
func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

// CreateApplication student applies to a post
// POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "studentId and postId are required")
		return
	}

	application, err := h.applicationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleApplicationError(c, err, application)
		return
	}

	response.CreatedWithMessage(c, "application submitted", application)
}

// ListApplications optional studentId / postId filters
// GET /applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ApplicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c)
		return
	}

	applications, err := h.applicationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, applications)
}

// GetApplication
// GET /applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleApplicationError(c, err, nil)
		return
	}

	response.OK(c, application)
}

// UpdateApplication status overwrite
// PUT /applications/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "status is required")
		return
	}

	application, err := h.applicationSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleApplicationError(c, err, nil)
		return
	}

	response.OKWithMessage(c, "application updated", application)
}

// DeleteApplication withdraw; rejected applications stay
// DELETE /applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleApplicationError(c, err, application)
		return
	}

	response.OKWithMessage(c, "application withdrawn", nil)
}

func (h *ApplicationHandler) handleApplicationError(c *gin.Context, err error, existing *model.Application) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrApplicationExists):
		response.Conflict(c, 16002, err.Error(), existing)
	case errors.Is(err, service.ErrApplicationStudentNotFound):
		response.NotFound(c, 16003, err.Error())
	case errors.Is(err, service.ErrApplicationPostNotFound):
		response.NotFound(c, 16004, err.Error())
	case errors.Is(err, service.ErrApplicationRejected):
		response.Conflict(c, 16005, err.Error(), existing)
	default:
		response.InternalError(c)
	}
}
