package notification_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// MarkNotificationRead godoc
// @Summary Mark one notification as read
// @Tags CMS - Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/notifications/{id}/read [put]
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid notification ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	notification, err := store.MarkNotificationRead(ctx, id)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Notification not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update notification"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification marked as read", notification))
}
