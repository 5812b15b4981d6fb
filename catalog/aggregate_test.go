package catalog

import (
	"encoding/json"
	"testing"

	"github.com/bavien2005/AntaShop-Website/models"
)

func rowsFromJSON(t *testing.T, docs ...string) []Row {
	t.Helper()
	raw := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		raw[i] = json.RawMessage(d)
	}
	return DecodeRows(raw)
}

func TestAggregateGroupsRowsByProduct(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"productId": "p1", "name": "Giày ANTA KT7", "price": 2990000,
		  "variantId": "v1", "variantSku": "KT7-42", "size": "42", "stock": 4}`,
		`{"productId": "p1", "name": "Giày ANTA KT7",
		  "variantId": "v2", "variantSku": "KT7-43", "size": "43", "stock": 6}`,
		`{"productId": "p2", "name": "Áo ANTA Polo", "price": 590000}`,
	)

	products, unkeyed := Aggregate(rows)
	if len(unkeyed) != 0 {
		t.Fatalf("unkeyed = %d, want 0", len(unkeyed))
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	if products[0].ID != "p1" || products[1].ID != "p2" {
		t.Errorf("first-seen order not preserved: %s, %s", products[0].ID, products[1].ID)
	}
	if len(products[0].Variants) != 2 {
		t.Errorf("p1 variants = %d, want 2", len(products[0].Variants))
	}
}

func TestAggregateIdentifierlessRowsStaySeparate(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"name": "Mystery A", "price": 100}`,
		`{"name": "Mystery B", "price": 200}`,
	)

	products, unkeyed := Aggregate(rows)
	if len(unkeyed) != 2 {
		t.Fatalf("unkeyed = %d, want 2", len(unkeyed))
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2 independent entries", len(products))
	}
	if products[0].ID == products[1].ID {
		t.Errorf("two identifier-less rows merged under key %q", products[0].ID)
	}
}

func TestAggregateServerStockWinsOverVariantSum(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"productId": "p1", "name": "KT7", "totalStock": 50,
		  "variants": [{"id": "v1", "sku": "A", "stock": 3}, {"id": "v2", "sku": "B", "stock": 4}]}`,
	)

	products, _ := Aggregate(rows)
	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
	// The server total is authoritative; the variant sum (7) must not be
	// added to it or replace it.
	if got := products[0].TotalStock; got != 50 {
		t.Errorf("TotalStock = %d, want 50", got)
	}
}

func TestAggregateVariantSumWhenNoServerStock(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"productId": "p1", "name": "KT7",
		  "variants": [{"id": "v1", "sku": "A", "stock": 3}, {"id": "v2", "sku": "B", "stock": 4}]}`,
	)

	products, _ := Aggregate(rows)
	if got := products[0].TotalStock; got != 7 {
		t.Errorf("TotalStock = %d, want 7 (variant sum)", got)
	}
}

func TestAggregateDeduplicatesVariants(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"productId": "p1", "variantId": "v1", "variantSku": "KT7-42", "stock": 4}`,
		`{"productId": "p1", "variantId": "v1", "variantSku": "KT7-42", "stock": 4}`,
		`{"productId": "p1", "variantSku": "KT7-43", "stock": 2, "price": 100}`,
	)

	products, _ := Aggregate(rows)
	if got := len(products[0].Variants); got != 2 {
		t.Fatalf("variants = %d, want 2 (v1 deduped, SKU-only kept)", got)
	}
}

func TestDecodeRowsDropsNonObjects(t *testing.T) {
	rows := rowsFromJSON(t,
		`{"productId": "p1"}`,
		`"just a string"`,
		`42`,
		`[1, 2, 3]`,
	)
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1 (non-objects dropped)", len(rows))
	}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  string
	}{
		{-1, StockStatusOut},
		{0, StockStatusOut},
		{3, StockStatusLow},
		{5, StockStatusLow},
		{6, StockStatusActive},
		{100, StockStatusActive},
	}
	for _, tt := range tests {
		if got := StockStatus(tt.stock); got != tt.want {
			t.Errorf("StockStatus(%d) = %q, want %q", tt.stock, got, tt.want)
		}
	}
}

func TestPriceRange(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	tests := []struct {
		name    string
		product models.Product
		want    string
	}{
		{
			name: "distinct variant prices",
			product: models.Product{Variants: []models.Variant{
				{ID: "a", Price: price(100)},
				{ID: "b", Price: price(300)},
			}},
			want: "100 - 300",
		},
		{
			name: "equal variant prices collapse",
			product: models.Product{Variants: []models.Variant{
				{ID: "a", Price: price(150)},
				{ID: "b", Price: price(150)},
			}},
			want: "150",
		},
		{
			name: "non-positive variant prices ignored",
			product: models.Product{Price: 200, Variants: []models.Variant{
				{ID: "a", Price: price(0)},
				{ID: "b"},
			}},
			want: "200",
		},
		{
			name:    "nothing priced",
			product: models.Product{},
			want:    "—",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceRange(tt.product); got != tt.want {
				t.Errorf("PriceRange = %q, want %q", got, tt.want)
			}
		})
	}
}
