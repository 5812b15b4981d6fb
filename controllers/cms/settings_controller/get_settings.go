package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

var store *adminstore.Store

func Init(s *adminstore.Store) {
	store = s
}

// GetSettings godoc
// @Summary Fetch store settings
// @Tags CMS - Settings
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/settings [get]
func GetSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings := store.GetSettings(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched successfully", settings))
}
