package middleware

import (
	"strings"

	"metaads-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token from the Authorization header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Support both "Bearer <token>" and plain token
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		claims, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Expose the caller identity for logging/audit
		c.Set("subject", claims.Subject)

		c.Next()
	}
}
