package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/admin_controller"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the admin auth endpoints. Login stays outside
// the authenticated group so the dashboard can bootstrap.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.POST("/login", admin_controller.Login)
		admin.POST("/logout", admin_controller.Logout)
	}
}
