package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Shallow merge; omitted fields keep their stored value. Supplying variants recomputes quantity and price rollups.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.AdminProductInput true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var input models.AdminProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := store.UpdateProduct(ctx, id, input)
	if err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
