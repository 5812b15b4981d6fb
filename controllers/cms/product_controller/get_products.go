package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetProducts godoc
// @Summary List admin products
// @Description Remote catalog when configured, local document fallback; AND-combined filters
// @Tags CMS - Products
// @Produce json
// @Param name query string false "Name contains"
// @Param category query string false "Category"
// @Param quantityMin query int false "Minimum quantity"
// @Param quantityMax query int false "Maximum quantity"
// @Param priceMin query number false "Minimum price"
// @Param priceMax query number false "Maximum price"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	var filters models.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filters: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := store.GetProducts(ctx, filters)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
