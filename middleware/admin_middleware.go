package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

// AdminAuthMiddleware validates the admin JWT and attaches the admin's
// identity and role. The role travels in the token claims; there is no
// account lookup on the hot path.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Cookie first, then Authorization header
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)

		c.Next()
	}
}

// RequireSuperAdminMiddleware gates destructive admin operations.
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != "super_admin" {
			log.Printf("[auth] non-super-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
