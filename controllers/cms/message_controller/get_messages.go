package message_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

var store *adminstore.Store

func Init(s *adminstore.Store) {
	store = s
}

// GetMessages godoc
// @Summary List customer messages
// @Tags CMS - Messages
// @Produce json
// @Param unreadOnly query bool false "Only unread messages"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/messages [get]
func GetMessages(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	unreadOnly := c.Query("unreadOnly") == "true"
	messages := store.GetMessages(ctx, unreadOnly)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Messages fetched successfully", messages))
}
