package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecelliitbhu/ecell-backend/internal/api/handler"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
	"github.com/ecelliitbhu/ecell-backend/pkg/response"
)

// RevocationChecker reports whether a token id was revoked at logout
type RevocationChecker interface {
	IsAdminTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// AdminAuth guards admin routes.
// Expects Authorization: Bearer <token>; the token must carry role=admin, type=access
// and must not be revoked. Verified claims are stored under handler.AdminClaimsKey.
// A nil revocations disables the revocation check.
func AdminAuth(jwtMgr *jwt.Manager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing Authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, 10002, "malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			response.Forbidden(c, 10003, "admin access required")
			c.Abort()
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsAdminTokenRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				response.InternalError(c)
				c.Abort()
				return
			}
			if revoked {
				response.Unauthorized(c, 10002, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(handler.AdminClaimsKey, claims)
		c.Next()
	}
}
