package catalog

import (
	"testing"

	"github.com/bavien2005/AntaShop-Website/models"
)

func fptr(v float64) *float64 { return &v }

func searchFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Giày ANTA KT7", Brand: "ANTA", Category: "Giày", Price: 2990000,
			Variants: []models.Variant{{ID: "v1", Size: "42", Color: "Đen", Price: fptr(2990000)}}},
		{ID: "2", Name: "Áo Polo", Brand: "ANTA", Category: "Áo", Price: 590000,
			Variants: []models.Variant{{ID: "v2", Size: "L", Color: "Trắng", Price: fptr(590000)}}},
		{ID: "3", Name: "Giày chạy bộ", Brand: "Nike", Category: "Giày", Price: 1890000},
	}
}

func TestFilterSearchCombinesPredicatesWithAnd(t *testing.T) {
	got := FilterSearch(searchFixture(), models.SearchFilters{
		Brands:     []string{"anta"},
		Categories: []string{"giày"},
	})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("got %d products, want exactly product 1", len(got))
	}
}

func TestFilterSearchEmptyFiltersPassEverything(t *testing.T) {
	got := FilterSearch(searchFixture(), models.SearchFilters{})
	if len(got) != 3 {
		t.Errorf("got %d products, want all 3", len(got))
	}
}

func TestFilterSearchVariantAttributes(t *testing.T) {
	got := FilterSearch(searchFixture(), models.SearchFilters{Sizes: []string{"42"}})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("size filter matched %d products, want product 1", len(got))
	}

	got = FilterSearch(searchFixture(), models.SearchFilters{Colors: []string{"trắng"}})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("color filter matched %d products, want product 2", len(got))
	}
}

func TestFilterSearchInvertedPriceRangeIsSwapped(t *testing.T) {
	got := FilterSearch(searchFixture(), models.SearchFilters{
		PriceMin: fptr(3000000),
		PriceMax: fptr(1000000),
	})
	// Effective range is [1000000, 3000000].
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2 from the swapped range", len(got))
	}
}

func TestFilterAdminProductsInvertedQuantityRange(t *testing.T) {
	qty := func(v int) *int { return &v }
	products := []models.AdminProduct{
		{ID: 1, Name: "A", Quantity: 5},
		{ID: 2, Name: "B", Quantity: 50},
		{ID: 3, Name: "C", Quantity: 500},
	}

	got := FilterAdminProducts(products, models.ProductFilters{
		QuantityMin: qty(100),
		QuantityMax: qty(10),
	})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got %d products, want product 2 from the swapped range", len(got))
	}
}

func TestFilterAdminProductsNameIsCaseInsensitiveSubstring(t *testing.T) {
	products := []models.AdminProduct{
		{ID: 1, Name: "Giày ANTA KT7"},
		{ID: 2, Name: "Áo khoác gió"},
	}
	got := FilterAdminProducts(products, models.ProductFilters{Name: "anta"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %d products, want product 1", len(got))
	}
}

func TestSortProductsPriceAscUsesCheapestVariant(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 100, Variants: []models.Variant{{ID: "v", Price: fptr(900)}}},
		{ID: "b", Price: 500},
	}
	SortProducts(products, models.SortPriceAsc)
	// Product a's effective price is the variant's 900, not the bare 100.
	if products[0].ID != "b" {
		t.Errorf("order = [%s, %s], want b first", products[0].ID, products[1].ID)
	}
}

func TestSortProductsNewest(t *testing.T) {
	products := []models.Product{
		{ID: "1", CreatedAt: "2025-01-01"},
		{ID: "2", CreatedAt: "2025-06-01"},
		{ID: "3", CreatedAt: "2025-03-01"},
	}
	SortProducts(products, models.SortNewest)
	want := []string{"2", "3", "1"}
	for i, id := range want {
		if products[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, products[i].ID, id)
		}
	}
}

func TestSortProductsNewestFallsBackToNumericID(t *testing.T) {
	products := []models.Product{
		{ID: "2"},
		{ID: "10"},
		{ID: "1"},
	}
	SortProducts(products, models.SortNewest)
	want := []string{"10", "2", "1"}
	for i, id := range want {
		if products[i].ID != id {
			t.Fatalf("position %d = %s, want %s (numeric, not lexicographic)", i, products[i].ID, id)
		}
	}
}

func TestSortProductsPopularPreservesOrder(t *testing.T) {
	products := []models.Product{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	SortProducts(products, models.SortPopular)
	want := []string{"z", "a", "m"}
	for i, id := range want {
		if products[i].ID != id {
			t.Fatalf("position %d = %s, want %s (input order kept)", i, products[i].ID, id)
		}
	}
}
