package middleware

import (
	"gymbook/internal/domain"
	"gymbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the given role.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(required) {
			response.Forbidden(c, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func TrainerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleTrainer)
}
