package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Variant quantities drive the stored total; the cheapest variant drives the price
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.AdminProductInput true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	var input models.AdminProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product name is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := store.CreateProduct(ctx, input)
	if err != nil {
		log.Printf("[cms.products] ❌ create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("[cms.products] ✅ created product %d (%s)", product.ID, product.Name)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
