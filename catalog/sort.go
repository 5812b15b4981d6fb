package catalog

import (
	"sort"
	"strconv"

	"github.com/bavien2005/AntaShop-Website/models"
)

// SortProducts orders a product list in place by the given sort key.
// Sorting is stable, so "popular" — which carries no popularity signal
// from the backend — preserves input order, and ties under every other
// key keep their relative positions.
func SortProducts(products []models.Product, sortKey string) {
	switch sortKey {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return sortPrice(products[i]) < sortPrice(products[j])
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return sortPrice(products[i]) > sortPrice(products[j])
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return newerThan(products[i], products[j])
		})
	case models.SortPopular, "":
		// No popularity signal; keep the backend's order.
	}
}

// sortPrice is the comparable price for sorting; a missing price is
// treated as 0.
func sortPrice(p models.Product) float64 {
	return effectivePrice(p)
}

// newerThan prefers creation timestamps when both products carry one,
// falling back to descending numeric id.
func newerThan(a, b models.Product) bool {
	if a.CreatedAt != "" && b.CreatedAt != "" && a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	ai, aerr := strconv.ParseInt(a.ID, 10, 64)
	bi, berr := strconv.ParseInt(b.ID, 10, 64)
	if aerr == nil && berr == nil {
		return ai > bi
	}
	return a.ID > b.ID
}
