package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Deletes the line, then re-fetches the authoritative cart
// @Tags cart
// @Produce json
// @Param cartItemId path string true "Cart item ID"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/cart/items/{cartItemId} [delete]
func RemoveCartItem(c *gin.Context) {
	manager := managerFor(c)
	if manager == nil {
		return
	}

	updated, err := manager.RemoveItem(c.Request.Context(), c.Param("cartItemId"))
	if err != nil {
		writeUpstreamError(c, err, "Could not remove item from cart")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cartPayload(manager, updated)))
}
