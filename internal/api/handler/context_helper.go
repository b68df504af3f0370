package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// AdminClaimsKey context key the admin middleware stores verified claims under
const AdminClaimsKey = "admin_claims"

// MustGetAdminClaims extracts the claims injected by AdminAuth.
// Writes a 401 and returns false when they are missing; callers return immediately.
func MustGetAdminClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(AdminClaimsKey)
	if !exists {
		response.Unauthorized(c, 10002, "unauthenticated")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "unauthenticated")
		return nil, false
	}
	return claims, true
}

// parseUintParam reads a positive numeric path parameter, writing a 400 on failure
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *gin.Context) {
	response.BadRequest(c, 10001, "invalid request parameters")
}

// parseUUIDParam reads a UUID path parameter, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, 10001, name+" must be a UUID")
		return "", false
	}
	return id, true
}
