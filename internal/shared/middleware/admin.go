package middleware

import (
	"github.com/gin-gonic/gin"

	"cozastore-backend/internal/shared/response"
)

// AdminMiddleware gates a route on the admin role set by AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.Forbidden(c, "access denied: admin role required")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
