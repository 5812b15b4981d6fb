package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	{
		order.GET("", order_controller.GetOrders)
		order.GET("/:id", order_controller.GetOrderByID)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoice)

		order.POST("", order_controller.CreateOrder)
		order.PUT("/:id/status", order_controller.UpdateOrderStatus)
		order.POST("/:id/shipping", order_controller.ArrangeShipping)
	}
}
