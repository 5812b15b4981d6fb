package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetLowStockProducts godoc
// @Summary Products at or below the low-stock badge threshold
// @Tags CMS - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/low-stock [get]
func GetLowStockProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := store.LowStockProducts(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Low stock products fetched successfully", products))
}
