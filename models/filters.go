package models

import "strings"

// ProductFilters is the admin product-table filter state. A nil bound
// is unbounded; blank strings are unset. Inverted ranges are swapped by
// Normalize, never rejected.
type ProductFilters struct {
	Name        string   `form:"name"`
	Category    string   `form:"category"`
	QuantityMin *int     `form:"quantityMin"`
	QuantityMax *int     `form:"quantityMax"`
	PriceMin    *float64 `form:"priceMin"`
	PriceMax    *float64 `form:"priceMax"`
}

// Normalize trims text fields and swaps inverted numeric bounds so the
// effective range always has min <= max.
func (f *ProductFilters) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	if f.QuantityMin != nil && f.QuantityMax != nil && *f.QuantityMin > *f.QuantityMax {
		f.QuantityMin, f.QuantityMax = f.QuantityMax, f.QuantityMin
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		f.PriceMin, f.PriceMax = f.PriceMax, f.PriceMin
	}
}

// IsEmpty reports whether no filter field is set at all.
func (f ProductFilters) IsEmpty() bool {
	return f.Name == "" && f.Category == "" &&
		f.QuantityMin == nil && f.QuantityMax == nil &&
		f.PriceMin == nil && f.PriceMax == nil
}

// SearchFilters is the storefront search-page filter state. Empty sets
// are always satisfied.
type SearchFilters struct {
	Brands     []string `form:"brand"`
	Categories []string `form:"category"`
	Sizes      []string `form:"size"`
	Colors     []string `form:"color"`
	PriceMin   *float64 `form:"priceMin"`
	PriceMax   *float64 `form:"priceMax"`
}

func (f *SearchFilters) Normalize() {
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		f.PriceMin, f.PriceMax = f.PriceMax, f.PriceMin
	}
}

// Sort keys accepted by the storefront listing endpoints.
const (
	SortPopular   = "popular"
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)
