package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// CreateOrder godoc
// @Summary Record a new order
// @Description Creates the order in needs-shipping state and raises an admin notification
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderInput true "Order details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/orders [post]
func CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order := store.CreateOrder(ctx, input)
	log.Printf("[cms.orders] ✅ created order %s for %s", order.OrderNumber, order.Customer)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
