package product_controller

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/catalog"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

var productService *services.ProductService

func Init(service *services.ProductService) {
	productService = service
}

// bindSearchFilters reads the filter state off the query string. Blank
// values stay unset so the engine skips them.
func bindSearchFilters(c *gin.Context) models.SearchFilters {
	var filters models.SearchFilters
	_ = c.ShouldBindQuery(&filters)
	return filters
}

// loadAggregated fetches the raw catalog rows and collapses them into
// grouped products. The unidentifiable-row count is surfaced to the
// handler so it can be reported in the response meta.
func loadAggregated(ctx context.Context, params url.Values) ([]models.Product, int, error) {
	raw, err := productService.GetProducts(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	products, unkeyed := catalog.Aggregate(catalog.DecodeRows(raw))
	return products, len(unkeyed), nil
}

// shapeListing applies the filter/sort engine and decorates each product
// with its display fields.
func shapeListing(products []models.Product, filters models.SearchFilters, sortKey string) []gin.H {
	filtered := catalog.FilterSearch(products, filters)
	catalog.SortProducts(filtered, sortKey)

	out := make([]gin.H, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, gin.H{
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
		})
	}
	return out
}
