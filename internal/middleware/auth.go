// Package middleware provides the gin middleware chain.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/security/jwt"
)

// AuthRequired validates the Bearer token and places the authenticated
// actor on the request context.
func AuthRequired(tm *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			resp.Fail(c.Writer, resp.UnAuthorized("Missing authorization token"))
			c.Abort()
			return
		}

		claims, err := tm.DecodeToken(token)
		if err != nil || !jwt.IsAccessToken(claims) {
			resp.Fail(c.Writer, resp.UnAuthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		userID := jwt.GetPayloadString(claims, "user_id")
		role := domain.Role(jwt.GetPayloadString(claims, "role"))
		if userID == "" || !role.Valid() {
			resp.Fail(c.Writer, resp.UnAuthorized("Invalid token payload"))
			c.Abort()
			return
		}

		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		ctx = ctxutil.SetUserID(ctx, userID)
		ctx = ctxutil.SetUserRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not one of
// the given roles. It must run after AuthRequired.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := ctxutil.GetUserRole(c.Request.Context())
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		resp.Fail(c.Writer, resp.Forbidden("Insufficient permissions"))
		c.Abort()
	}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the access_token query parameter.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("access_token")
}
