package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/events"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/utils"
)

// AuthMiddleware validates the user JWT from cookie or Authorization
// header. A present-but-invalid token additionally broadcasts a logout
// for the session, so the cart manager drops the stale state.
func AuthMiddleware(notifier *events.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			if sessionID, ok := GetSessionIDFromContext(c); ok && notifier != nil {
				notifier.NotifyLogout(sessionID)
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

// OptionalAuthMiddleware attaches user identity when a valid token is
// present but never rejects the request; guest traffic continues with
// only the session identifier.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if claims, err := utils.ValidateJWT(token); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("userEmail", claims.Email)
				c.Set("userName", claims.Name)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	cookieToken, err := c.Cookie("auth_token")
	if err == nil && cookieToken != "" {
		return cookieToken, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("userEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
