package notification_controller

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

// GetNotifications godoc
// @Summary List admin notifications
// @Tags CMS - Notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/notifications [get]
func GetNotifications(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	unreadOnly := c.Query("unreadOnly") == "true"
	notifications := store.GetNotifications(ctx, unreadOnly)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notifications fetched successfully", notifications))
}
