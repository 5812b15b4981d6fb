package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/models"
)

// GetCart godoc
// @Summary Get the current cart
// @Description Returns the cart keyed by user identity when logged in, session otherwise
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/cart [get]
func GetCart(c *gin.Context) {
	manager := managerFor(c)
	if manager == nil {
		return
	}

	// Fetch failures degrade to an empty cart inside the manager.
	current := manager.FetchCart(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartPayload(manager, current)))
}
