package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", analytics_controller.GetDashboardStats)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
		analytics.GET("/daily-revenue", analytics_controller.GetDailyRevenue)
		analytics.GET("/category-revenue", analytics_controller.GetCategoryRevenue)
		analytics.GET("/low-stock", analytics_controller.GetLowStockProducts)
	}
}
