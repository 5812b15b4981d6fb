package product_controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/catalog"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetStoreProductByID godoc
// @Summary Get one storefront product
// @Produce json
// @Tags store
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id} [get]
func GetStoreProductByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	raw, err := productService.GetProduct(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	products, _ := catalog.Aggregate(catalog.DecodeRows([]json.RawMessage{raw}))
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	p := products[0]
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"thumbnail":   p.Thumbnail,
		"category":    p.Category,
		"brand":       p.Brand,
		"price":       p.Price,
		"priceRange":  catalog.PriceRange(p),
		"totalStock":  p.TotalStock,
		"stockStatus": catalog.StockStatus(p.TotalStock),
		"rating":      p.Rating,
		"sales":       p.Sales,
		"variants":    p.Variants,
		"createdAt":   p.CreatedAt,
	}))
}
