package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Tags CMS - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, adminstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Best effort: clear the product's image folder
	if cloudinaryService != nil {
		folder := productImageFolder(id)
		if err := cloudinaryService.DeleteProductImages(ctx, folder); err != nil {
			log.Printf("[cms.products] ⚠️ could not clean up images for product %d: %v", id, err)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
