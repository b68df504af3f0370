package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// AuthHandler admin identity endpoints
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// CheckAdminEmail presence check, grants nothing
// POST /ambassador/checkAdminEmail
func (h *AuthHandler) CheckAdminEmail(c *gin.Context) {
	var req dto.CheckAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "email is required")
		return
	}

	isAdmin, err := h.authSvc.IsAdmin(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.CheckAdminResponse{IsAdmin: isAdmin})
}

// Login exchanges admin credentials for an access token
// POST /ambassador/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, token)
}

// Logout revokes the presented token
// POST /ambassador/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetAdminClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OKWithMessage(c, "logged out", nil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, err.Error())
	case errors.Is(err, service.ErrWeakPassword):
		response.BadRequest(c, 11002, err.Error())
	default:
		response.InternalError(c)
	}
}
