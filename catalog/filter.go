package catalog

import (
	"strings"

	"github.com/bavien2005/AntaShop-Website/models"
)

// FilterSearch applies the storefront search filters as independent
// AND-combined predicates over an aggregated product set. Empty filter
// values are always satisfied. Filters are normalized first, so an
// inverted price range is swapped rather than rejected.
func FilterSearch(products []models.Product, filters models.SearchFilters) []models.Product {
	filters.Normalize()

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSet(filters.Brands, p.Brand) {
			continue
		}
		if !matchesSet(filters.Categories, p.Category) {
			continue
		}
		if !matchesVariantSet(filters.Sizes, p.Variants, func(v models.Variant) string { return v.Size }) {
			continue
		}
		if !matchesVariantSet(filters.Colors, p.Variants, func(v models.Variant) string { return v.Color }) {
			continue
		}
		if !inPriceRange(effectivePrice(p), filters.PriceMin, filters.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAdminProducts applies the admin table filters over the document
// store's product list.
func FilterAdminProducts(products []models.AdminProduct, filters models.ProductFilters) []models.AdminProduct {
	filters.Normalize()
	if filters.IsEmpty() {
		return products
	}

	out := make([]models.AdminProduct, 0, len(products))
	for _, p := range products {
		if filters.Name != "" && !containsFold(p.Name, filters.Name) {
			continue
		}
		if filters.Category != "" && !strings.EqualFold(p.Category, filters.Category) {
			continue
		}
		if filters.QuantityMin != nil && p.Quantity < *filters.QuantityMin {
			continue
		}
		if filters.QuantityMax != nil && p.Quantity > *filters.QuantityMax {
			continue
		}
		if !inPriceRange(p.Price, filters.PriceMin, filters.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSet reports whether value belongs to the selected set; an empty
// set passes everything.
func matchesSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// matchesVariantSet passes when any variant's field is in the selected
// set.
func matchesVariantSet(selected []string, variants []models.Variant, field func(models.Variant) string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range variants {
		if matchesSet(selected, field(v)) {
			return true
		}
	}
	return false
}

func inPriceRange(price float64, min, max *float64) bool {
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

// effectivePrice uses the lowest positive variant price when one exists,
// falling back to the bare product price.
func effectivePrice(p models.Product) float64 {
	if min, _, found := variantPriceBounds(p.Variants); found {
		return min
	}
	return p.Price
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
