package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// onboardingRedirect where clients send users without a profile
const onboardingRedirect = "/sip/login"

// StudentHandler student profile endpoints
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler creates a StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// CreateStudent attaches a blank profile to the user
// POST /students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	student, created, err := h.studentSvc.Create(c.Request.Context(), req.UserID)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	if created {
		response.CreatedWithMessage(c, "student created", student)
		return
	}
	response.OKWithMessage(c, "student already exists", student)
}

// GetStudent profile by user id
// GET /students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// UpdateStudent partial profile update by user id
// PUT /students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OKWithMessage(c, "student updated", student)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.ErrorWithData(c, http.StatusUnauthorized, 13001, err.Error(), dto.OnboardingRequired{
			Error:    "STUDENT_NOT_FOUND",
			Redirect: onboardingRedirect,
		})
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 13002, err.Error())
	default:
		response.InternalError(c)
	}
}
