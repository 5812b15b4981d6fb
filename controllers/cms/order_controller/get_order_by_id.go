package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetOrderByID godoc
// @Summary Get one order
// @Tags CMS - Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not fetch order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
