package product_controller

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetStoreProducts godoc
// @Summary List storefront products
// @Description Grouped product listing with variant rollups, filters and sorting
// @Tags store
// @Produce json
// @Param brand query []string false "Brands (repeatable)"
// @Param category query []string false "Categories (repeatable)"
// @Param size query []string false "Sizes (repeatable)"
// @Param color query []string false "Colors (repeatable)"
// @Param priceMin query number false "Minimum price"
// @Param priceMax query number false "Maximum price"
// @Param sort query string false "Sort key" Enums(popular, newest, price-asc, price-desc) default(popular)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/products [get]
func GetStoreProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Pass the category narrowing upstream; everything else is applied
	// locally over the aggregated set.
	params := url.Values{}
	for _, cat := range c.QueryArray("category") {
		params.Add("category", cat)
	}

	products, unidentified, err := loadAggregated(ctx, params)
	if err != nil {
		// Degrade to an empty listing; the storefront page must render.
		log.Printf("[store.products] ⚠️ upstream fetch failed, serving empty list: %v", err)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product service unavailable, showing empty catalog", []gin.H{}))
		return
	}

	listing := shapeListing(products, bindSearchFilters(c), c.DefaultQuery("sort", models.SortPopular))

	resp := models.SuccessResponse(c, "Products fetched successfully", listing)
	if unidentified > 0 {
		resp.RequestedEntity = "products (some upstream rows had no identifier)"
	}
	c.JSON(http.StatusOK, resp)
}
