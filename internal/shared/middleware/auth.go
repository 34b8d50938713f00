package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cozastore-backend/internal/shared/response"
	"cozastore-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware and read by handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware validates the bearer token and puts the opaque user id and
// role into the request context. Services downstream never see the token.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		if claims.UserID == "" {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// UserID returns the authenticated caller's id from the context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
