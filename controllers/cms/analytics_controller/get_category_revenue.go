package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetCategoryRevenue godoc
// @Summary Revenue split by product category
// @Tags CMS - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/category-revenue [get]
func GetCategoryRevenue(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	series := store.CategoryRevenue(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category revenue fetched successfully", series))
}
