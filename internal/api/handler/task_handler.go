package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// TaskHandler ambassador task endpoints
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler creates a TaskHandler
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// CreateTask creates a task and assigns it to every ambassador
// POST /ambassador/createTask
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "title, description, lastDate and positive points are required")
		return
	}

	resp, err := h.taskSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.CreatedWithMessage(c, "task created and assigned", resp)
}

// ListTasks every task, possibly empty
// GET /ambassador/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, tasks)
}

// GetAllTasks every task, 404 when none exist
// GET /ambassador/getAllTasks
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskSvc.ListNonEmpty(c.Request.Context())
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, tasks)
}

// UpdateTask partial update
// PUT /ambassador/tasks/:taskId
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseUintParam(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OKWithMessage(c, "task updated", task)
}

// DeleteTask removes the task with its submissions
// DELETE /ambassador/tasks/:taskId
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseUintParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OKWithMessage(c, "task deleted", nil)
}

// GetTasks tasks of one ambassador with derived status
// GET /ambassador/getTasks?userId=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	ambassadorID, ok := ambassadorIDQuery(c)
	if !ok {
		return
	}

	tasks, err := h.taskSvc.ForAmbassador(c.Request.Context(), ambassadorID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	response.OK(c, tasks)
}

// Calendar iCalendar feed of the ambassador's deadlines
// GET /ambassador/calendar?userId=
func (h *TaskHandler) Calendar(c *gin.Context) {
	ambassadorID, ok := ambassadorIDQuery(c)
	if !ok {
		return
	}

	feed, err := h.taskSvc.Calendar(c.Request.Context(), ambassadorID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=tasks.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// ambassadorIDQuery a missing userId is treated as an unauthenticated caller
func ambassadorIDQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("userId")
	if raw == "" {
		response.Unauthorized(c, 10002, "userId is required")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "userId must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 18001, err.Error())
	case errors.Is(err, service.ErrNoTasks):
		response.NotFound(c, 18002, err.Error())
	case errors.Is(err, service.ErrNoAmbassadors):
		response.BadRequest(c, 18003, err.Error())
	case errors.Is(err, service.ErrInvalidTaskDate):
		response.BadRequest(c, 18004, err.Error())
	case errors.Is(err, service.ErrAmbassadorNotFound):
		response.NotFound(c, 17001, err.Error())
	default:
		response.InternalError(c)
	}
}
