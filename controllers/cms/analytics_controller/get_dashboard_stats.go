package analytics_controller

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

// GetDashboardStats godoc
// @Summary Dashboard headline numbers
// @Tags CMS - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/stats [get]
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats := store.DashboardStats(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
}
