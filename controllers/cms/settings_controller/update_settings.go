package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// UpdateSettings godoc
// @Summary Update store settings
// @Tags CMS - Settings
// @Accept json
// @Produce json
// @Param settings body models.UpdateSettingsInput true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/settings [put]
func UpdateSettings(c *gin.Context) {
	var input models.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid settings payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings := store.UpdateSettings(ctx, input)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated successfully", settings))
}
