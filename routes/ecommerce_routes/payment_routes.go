package ecommerce_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/payment_controller"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		// MoMo redirects the shopper's browser here after checkout.
		payments.GET("/momo/return", payment_controller.MomoReturn)
		payments.GET("/momo/result", payment_controller.GetPaymentResult)
	}
}
