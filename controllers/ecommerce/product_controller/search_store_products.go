package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/catalog"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// SearchStoreProducts godoc
// @Summary Search storefront products
// @Description Full-text search upstream, then local filter/sort over the aggregated results
// @Tags store
// @Produce json
// @Param q query string true "Search query"
// @Param sort query string false "Sort key" Enums(popular, newest, price-asc, price-desc)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/products/search [get]
func SearchStoreProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search query is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	raw, err := productService.SearchProducts(ctx, query)
	if err != nil {
		log.Printf("[store.search] ⚠️ upstream search failed, serving empty list: %v", err)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Search unavailable, showing no results", []gin.H{}))
		return
	}

	products, _ := catalog.Aggregate(catalog.DecodeRows(raw))
	listing := shapeListing(products, bindSearchFilters(c), c.DefaultQuery("sort", models.SortPopular))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results fetched successfully", listing))
}
