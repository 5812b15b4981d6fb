package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one raw product record as returned by the product service. The
// upstream shape is not stable: a row can be a bare product, a product
// with an embedded variants array, or a single denormalized
// product-variant record. Accessors below walk the known field aliases
// in order and return the first usable value.
type Row map[string]any

// DecodeRows parses the raw JSON records the product service returned.
// Rows that are not JSON objects are dropped with no error; the rest of
// the page should still render.
func DecodeRows(raw []json.RawMessage) []Row {
	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		var row Row
		if err := json.Unmarshal(r, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// ProductKey returns the best available product identifier for grouping,
// or ok=false when the row carries none at all.
func (r Row) ProductKey() (string, bool) {
	for _, field := range []string{"productId", "product_id", "id"} {
		if s, ok := r.stringOrNumber(field); ok {
			return s, true
		}
	}
	if nested, ok := r["product"].(map[string]any); ok {
		if s, ok := Row(nested).stringOrNumber("id"); ok {
			return s, true
		}
	}
	return "", false
}

func (r Row) Name() string {
	return r.firstString("name", "productName", "product_name", "title")
}

func (r Row) Thumbnail() string {
	if s := r.firstString("thumbnail", "image", "imageUrl", "image_url"); s != "" {
		return s
	}
	if imgs, ok := r["images"].([]any); ok && len(imgs) > 0 {
		if s, ok := imgs[0].(string); ok {
			return s
		}
	}
	return ""
}

func (r Row) Category() string {
	if s := r.firstString("category", "categoryName", "category_name"); s != "" {
		return s
	}
	if nested, ok := r["category"].(map[string]any); ok {
		return Row(nested).firstString("name")
	}
	return ""
}

func (r Row) Brand() string {
	return r.firstString("brand", "brandName", "brand_name")
}

func (r Row) Price() (float64, bool) {
	return r.number("price", "unitPrice", "unit_price")
}

// ServerTotalStock returns an authoritative stock total when the backend
// supplies one. Plain "quantity"/"stock" on a denormalized variant row is
// deliberately not treated as a product total.
func (r Row) ServerTotalStock() (int, bool) {
	if f, ok := r.number("totalStock", "total_stock", "totalQuantity", "total_quantity"); ok {
		return int(f), true
	}
	return 0, false
}

func (r Row) Rating() float64 {
	f, _ := r.number("rating", "averageRating", "average_rating")
	return f
}

func (r Row) Sales() int {
	f, _ := r.number("sales", "sold", "soldCount", "sold_count")
	return int(f)
}

func (r Row) CreatedAt() string {
	return r.firstString("createdAt", "created_at", "createdDate")
}

func (r Row) firstString(fields ...string) string {
	for _, f := range fields {
		if s, ok := r[f].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// stringOrNumber accepts both string and numeric identifier encodings.
func (r Row) stringOrNumber(field string) (string, bool) {
	switch v := r[field].(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

func (r Row) number(fields ...string) (float64, bool) {
	for _, f := range fields {
		switch v := r[f].(type) {
		case float64:
			return v, true
		case json.Number:
			if parsed, err := v.Float64(); err == nil {
				return parsed, true
			}
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return parsed, true
			}
		case int:
			return float64(v), true
		}
	}
	return 0, false
}

func (r Row) String() string {
	if key, ok := r.ProductKey(); ok {
		return fmt.Sprintf("row(product=%s)", key)
	}
	return "row(no identifier)"
}
