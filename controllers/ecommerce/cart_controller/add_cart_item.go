package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
)

// AddCartItem godoc
// @Summary Add a product line to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.AddItemInput true "Product line"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/cart/items [post]
func AddCartItem(c *gin.Context) {
	var input models.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	manager := managerFor(c)
	if manager == nil {
		return
	}

	updated, err := manager.AddItem(c.Request.Context(), input)
	if err != nil {
		writeUpstreamError(c, err, "Could not add item to cart")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cartPayload(manager, updated)))
}
