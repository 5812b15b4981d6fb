package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/message_controller"
	"github.com/gin-gonic/gin"
)

func SetupMessageRoutes(rg *gin.RouterGroup) {
	message := rg.Group("/messages")
	{
		message.GET("", message_controller.GetMessages)
		message.PUT("/:id/read", message_controller.MarkMessageRead)
		message.POST("/:id/reply", message_controller.ReplyMessage)
	}
}
