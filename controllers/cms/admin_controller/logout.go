package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
)

// Logout godoc
// @Summary Admin logout
// @Tags CMS - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
