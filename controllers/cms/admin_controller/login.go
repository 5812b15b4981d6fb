package admin_controller

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Verifies the configured admin credentials and issues an admin JWT cookie.
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param credentials body loginInput true "Admin credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/admin/login [post]
func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	adminEmail := config.GetEnv("ADMIN_EMAIL", "")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "")
	if adminEmail == "" || adminPassword == "" {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Admin login is not configured"))
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(adminPassword)) == 1
	if !emailOK || !passwordOK {
		log.Printf("[admin.login] ❌ rejected login attempt for %s", input.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GetJWTService().GenerateAdminJWT("admin", adminEmail, "super_admin")
	if err != nil {
		log.Printf("[admin.login] failed to sign admin token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not issue admin token"))
		return
	}

	isProd := config.GetEnv("ENV", "development") == "production"
	c.SetCookie("admin_token", token, 24*3600, "/", "", isProd, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"email": adminEmail,
			"role":  "super_admin",
		},
	}))
}
