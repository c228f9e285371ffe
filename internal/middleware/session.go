package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionID = "sessionID"

	// SessionCookie names the browsing-session cookie. The session
	// identifies a cart whether or not the visitor is signed in.
	SessionCookie = "kedai_session"

	sessionMaxAge = 60 * 60 * 24 * 30 // 30 days
)

// Session assigns every visitor a browsing-session ID, carried in a
// cookie and reused across requests
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(ctxSessionID, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the browsing-session ID
func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionID); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
