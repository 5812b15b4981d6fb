package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the guest session identifier cookie.
const SessionCookie = "session_id"

const sessionCookieMaxAge = 60 * 60 * 24 * 30 // 30 days

// EnsureSession guarantees every storefront request carries a session
// identifier, minting and setting the cookie when absent. The id keys
// the guest cart until login.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			SetSessionCookie(c, id)
		}
		c.Set("sessionID", id)
		c.Next()
	}
}

// SetSessionCookie (re)issues the session cookie, used both on first
// sight and when logout rotates the identifier.
func SetSessionCookie(c *gin.Context, id string) {
	c.SetCookie(SessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
}

// GetSessionIDFromContext returns the request's session identifier.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return id.(string), true
}
