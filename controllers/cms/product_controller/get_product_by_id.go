package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetProductByID godoc
// @Summary Get one admin product
// @Tags CMS - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
