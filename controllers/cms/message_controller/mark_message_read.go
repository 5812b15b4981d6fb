package message_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// MarkMessageRead godoc
// @Summary Mark a message as read
// @Tags CMS - Messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/messages/{id}/read [put]
func MarkMessageRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	message, err := store.MarkMessageRead(ctx, id)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not update message"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message marked as read", message))
}
