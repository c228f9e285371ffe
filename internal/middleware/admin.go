package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
)

// RequireAdmin gates back-office routes. Must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != string(domain.RoleAdmin) {
			common.ErrorResponse(c, 403, "Admin access required", common.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
