package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/pkg/jwt"
)

// Context keys set by the auth middleware
const (
	ctxUserID   = "userID"
	ctxUserName = "userName"
	ctxUserRole = "userRole"
)

// JWTAuth requires a valid bearer token
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserName, claims.Name)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present but
// lets anonymous requests through; guest sessions can browse and order
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := bearerClaims(c, jwtManager); err == nil {
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxUserName, claims.Name)
			c.Set(ctxUserRole, claims.Role)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrUnauthorized
	}
	return jwtManager.VerifyToken(parts[1])
}

// GetUserID extracts the authenticated user ID, empty for guests
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(ctxUserID); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserName extracts the authenticated display name
func GetUserName(c *gin.Context) string {
	if v, exists := c.Get(ctxUserName); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole extracts the authenticated role, empty for guests
func GetUserRole(c *gin.Context) string {
	if v, exists := c.Get(ctxUserRole); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
