package message_controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

type replyInput struct {
	Message string `json:"message" binding:"required"`
}

// ReplyMessage godoc
// @Summary Reply to a customer message
// @Description Appends an admin reply and marks the thread read
// @Tags CMS - Messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param reply body replyInput true "Reply text"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/messages/{id}/reply [post]
func ReplyMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message id"))
		return
	}

	var input replyInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Reply text is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	message, err := store.ReplyToMessage(ctx, id, input.Message)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not send reply"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reply sent successfully", message))
}
