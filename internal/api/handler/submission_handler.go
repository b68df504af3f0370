package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	pkgerrors "github.com/ecelliitbhu/ecell-backend/pkg/errors"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// SubmissionHandler submission and review endpoints
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler
func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Submit ambassador hands in a task
// POST /ambassador/submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "taskId, email and submission are required")
		return
	}

	submission, err := h.submissionSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OKWithMessage(c, "task submitted", submission)
}

// AdminTasks reviews one submission when taskId, userId and action are given,
// otherwise returns the per-ambassador overview
// POST /ambassador/admin/tasks
func (h *SubmissionHandler) AdminTasks(c *gin.Context) {
	var req dto.AdminTasksRequest
	// an empty body asks for the overview
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}
	}

	if !req.IsReview() {
		overview, err := h.submissionSvc.Overview(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, overview)
		return
	}

	result, err := h.submissionSvc.Review(c.Request.Context(), &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OKWithMessage(c, "submission "+result.Status, result)
}

// Feed every submission, awaiting review first
// GET /ambassador/admin/tasks
func (h *SubmissionHandler) Feed(c *gin.Context) {
	entries, err := h.submissionSvc.Feed(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}

// ClearSubmissions resets task-level submission fields
// DELETE /ambassador/submissions/clear
func (h *SubmissionHandler) ClearSubmissions(c *gin.Context) {
	var req dto.ClearSubmissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "taskIds or confirmAll is required")
		return
	}

	cleared, err := h.submissionSvc.Clear(c.Request.Context(), &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OKWithMessage(c, "submissions cleared", dto.ClearSubmissionsResponse{Cleared: cleared})
}

func (h *SubmissionHandler) handleSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAmbassadorNotFound):
		response.NotFound(c, 17001, err.Error())
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 18001, err.Error())
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.NotFound(c, 19001, err.Error())
	case errors.Is(err, service.ErrSubmissionFinalized):
		response.BadRequest(c, 19002, err.Error())
	case errors.Is(err, service.ErrSubmissionNotReviewable):
		response.BadRequest(c, 19003, err.Error())
	case errors.Is(err, service.ErrInvalidReviewAction):
		response.BadRequest(c, 19004, err.Error())
	case errors.Is(err, pkgerrors.ErrScopeRequired):
		response.BadRequest(c, 19005, "taskIds or confirmAll is required")
	default:
		response.InternalError(c)
	}
}
