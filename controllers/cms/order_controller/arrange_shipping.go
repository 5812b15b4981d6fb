package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// ArrangeShipping godoc
// @Summary Arrange shipping for an order
// @Description Attaches carrier details and moves the order to sent
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param shipping body models.ShippingInfo true "Shipping details"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id}/shipping [post]
func ArrangeShipping(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order id"))
		return
	}

	var info models.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.ArrangeShipping(ctx, id, info)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not arrange shipping"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shipping arranged successfully", order))
}
