package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

var validStatuses = map[string]bool{
	models.OrderStatusNeedsShipping: true,
	models.OrderStatusSent:          true,
	models.OrderStatusCompleted:     true,
	models.OrderStatusCancelled:     true,
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body updateStatusInput true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id}/status [put]
func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order id"))
		return
	}

	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if !validStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown order status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.UpdateOrderStatus(ctx, id, input.Status)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not update order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
