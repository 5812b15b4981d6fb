package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a secure cookie, and redirecting the user to Google's consent page.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 503 {object} models.ApiResponse "Google login not configured"
// @Router /api/v1/auth/google [get]
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google login is not configured"))
		return
	}

	state := uuid.New().String()

	log.Printf("🔐 Setting state cookie: %s", state)
	c.SetCookie("oauth_state", state, 3600, "/", "", false, true)
	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
