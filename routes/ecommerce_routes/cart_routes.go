package ecommerce_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/cart_controller"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes wires the session-scoped cart. Guests get a cart too,
// so auth is optional; the session cookie is what identifies the cart.
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	cart.Use(middleware.EnsureSession())
	cart.Use(middleware.OptionalAuthMiddleware())
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PUT("/items", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:cartItemId", cart_controller.RemoveCartItem)
	}
}
