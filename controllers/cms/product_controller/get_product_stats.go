package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetProductStats godoc
// @Summary Product inventory stats
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats := store.ProductStats(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
