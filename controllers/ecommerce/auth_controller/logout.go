package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/bavien2005/AntaShop-Website/models"
)

// Logout godoc
// @Summary Logout user
// @Description Clears the auth cookies, broadcasts the logout so the cart resets, and rotates the session identifier so the next guest does not inherit the cart.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"

	// Cookie attributes must match the ones used when setting
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
	c.SetCookie("user_data", "", -1, "/", "", isProd, false)

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok && notifier != nil {
		manager := registry.Acquire(sessionID)
		notifier.NotifyLogout(sessionID)
		if newID := manager.SessionID(); newID != sessionID {
			middleware.SetSessionCookie(c, newID)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
