package ecommerce_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/auth_controller"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.Use(middleware.EnsureSession())
	{
		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
