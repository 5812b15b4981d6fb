package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetOrders godoc
// @Summary List orders
// @Description Orders newest first, optionally narrowed by search text and status
// @Tags CMS - Orders
// @Produce json
// @Param search query string false "Order number or customer contains"
// @Param status query string false "Order status" Enums(needs-shipping, sent, completed, cancelled, all)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/orders [get]
func GetOrders(c *gin.Context) {
	var filters models.OrderFilters
	_ = c.ShouldBindQuery(&filters)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders := store.GetOrders(ctx, filters)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
