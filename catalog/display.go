package catalog

import (
	"strconv"

	"github.com/bavien2005/AntaShop-Website/models"
)

// LowStockThreshold is the inventory level at or below which a product
// is shown as running low.
const LowStockThreshold = 5

const (
	StockStatusOut    = "out"
	StockStatusLow    = "low"
	StockStatusActive = "active"
)

// StockStatus classifies an inventory count for the admin product table.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockStatusOut
	case stock <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusActive
	}
}

// PriceRange renders the price text for a product card. With variants it
// is the [min, max] over positive variant prices, collapsed to a single
// value when equal; without usable variant prices it falls back to the
// bare product price, and to a dash when nothing is priced.
func PriceRange(p models.Product) string {
	min, max, found := variantPriceBounds(p.Variants)
	if found {
		if min == max {
			return formatPrice(min)
		}
		return formatPrice(min) + " - " + formatPrice(max)
	}
	if p.Price > 0 {
		return formatPrice(p.Price)
	}
	return "—"
}

func variantPriceBounds(variants []models.Variant) (min, max float64, found bool) {
	for _, v := range variants {
		if v.Price == nil || *v.Price <= 0 {
			continue
		}
		price := *v.Price
		if !found {
			min, max, found = price, price, true
			continue
		}
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max, found
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
