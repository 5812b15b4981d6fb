package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
)

type updateQuantityInput struct {
	ProductID int64   `json:"productId" binding:"required"`
	VariantID *string `json:"variantId"`
	Quantity  int     `json:"quantity" binding:"min=1"`
}

// UpdateCartItem godoc
// @Summary Update a cart line's quantity
// @Description No-op while no cart exists yet for this identity
// @Tags cart
// @Accept json
// @Produce json
// @Param item body updateQuantityInput true "Quantity update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/cart/items [put]
func UpdateCartItem(c *gin.Context) {
	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	manager := managerFor(c)
	if manager == nil {
		return
	}

	updated, err := manager.UpdateQuantity(c.Request.Context(), input.ProductID, input.VariantID, input.Quantity)
	if err != nil {
		writeUpstreamError(c, err, "Could not update cart quantity")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", cartPayload(manager, updated)))
}
