package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/settings_controller"
	"github.com/gin-gonic/gin"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", settings_controller.GetSettings)
		settings.PUT("", settings_controller.UpdateSettings)
	}
}
