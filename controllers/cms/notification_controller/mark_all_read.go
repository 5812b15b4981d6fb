package notification_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// MarkAllNotificationsRead godoc
// @Summary Mark every notification as read
// @Tags CMS - Notifications
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/notifications/read-all [put]
func MarkAllNotificationsRead(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	marked := store.MarkAllNotificationsRead(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "All notifications marked as read", gin.H{
		"marked": marked,
	}))
}
