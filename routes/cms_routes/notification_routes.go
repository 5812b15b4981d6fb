package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/notification_controller"
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(rg *gin.RouterGroup) {
	notification := rg.Group("/notifications")
	{
		notification.GET("", notification_controller.GetNotifications)
		notification.PUT("/read-all", notification_controller.MarkAllNotificationsRead)
		notification.PUT("/:id/read", notification_controller.MarkNotificationRead)
	}
}
