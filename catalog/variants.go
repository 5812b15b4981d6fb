package catalog

import (
	"github.com/bavien2005/AntaShop-Website/models"
)

// A variantStrategy inspects a raw row and extracts the variant it
// carries, if any. Strategies are tried in declaration order and at most
// one fires per row; the ad hoc field probing this replaces meant a row
// could never contribute through two paths at once, and that property is
// kept here.
type variantStrategy struct {
	name    string
	extract func(Row) (models.Variant, bool)
}

var variantStrategies = []variantStrategy{
	{name: "embedded", extract: extractEmbeddedVariant},
	{name: "flattened", extract: extractFlattenedVariant},
	{name: "denormalized", extract: extractDenormalizedVariant},
}

// extractVariants resolves the variants carried by a row. A row holding a
// full variants array yields all of them; otherwise the single-variant
// strategies run in order.
func extractVariants(row Row) []models.Variant {
	if list, ok := row["variants"].([]any); ok && len(list) > 0 {
		variants := make([]models.Variant, 0, len(list))
		for _, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if v, ok := variantFromObject(Row(obj)); ok {
				variants = append(variants, v)
			}
		}
		return variants
	}

	for _, strategy := range variantStrategies {
		if v, ok := strategy.extract(row); ok {
			return []models.Variant{v}
		}
	}
	return nil
}

// extractEmbeddedVariant handles rows with a nested variant object.
func extractEmbeddedVariant(row Row) (models.Variant, bool) {
	obj, ok := row["variant"].(map[string]any)
	if !ok {
		return models.Variant{}, false
	}
	return variantFromObject(Row(obj))
}

// extractFlattenedVariant handles rows where variant fields are hoisted
// onto the product row with a variant prefix.
func extractFlattenedVariant(row Row) (models.Variant, bool) {
	id, hasID := row.stringOrNumber("variantId")
	if !hasID {
		id, hasID = row.stringOrNumber("variant_id")
	}
	sku := row.firstString("variantSku", "variant_sku")
	if !hasID && sku == "" {
		return models.Variant{}, false
	}

	v := models.Variant{ID: id, SKU: sku}
	if f, ok := row.number("variantPrice", "variant_price"); ok {
		v.Price = &f
	}
	if f, ok := row.number("variantStock", "variant_stock"); ok {
		v.Stock = int(f)
	}
	v.Size = row.firstString("variantSize", "variant_size", "size")
	v.Color = row.firstString("variantColor", "variant_color", "color")
	v.Thumbnail = row.firstString("variantThumbnail", "variant_thumbnail")
	return v, true
}

// extractDenormalizedVariant handles rows that are themselves a single
// product-variant record: a sku plus its own stock or price.
func extractDenormalizedVariant(row Row) (models.Variant, bool) {
	sku := row.firstString("sku")
	if sku == "" {
		return models.Variant{}, false
	}
	_, hasStock := row.number("stock", "quantity")
	_, hasPrice := row.number("price")
	if !hasStock && !hasPrice {
		return models.Variant{}, false
	}

	v := models.Variant{SKU: sku}
	if id, ok := row.stringOrNumber("variantId"); ok {
		v.ID = id
	}
	if f, ok := row.number("price"); ok {
		v.Price = &f
	}
	if f, ok := row.number("stock", "quantity"); ok {
		v.Stock = int(f)
	}
	v.Size = row.firstString("size")
	v.Color = row.firstString("color")
	return v, true
}

func variantFromObject(obj Row) (models.Variant, bool) {
	id, hasID := obj.stringOrNumber("id")
	sku := obj.firstString("sku")
	if !hasID && sku == "" {
		return models.Variant{}, false
	}

	v := models.Variant{ID: id, SKU: sku}
	if f, ok := obj.number("price"); ok {
		v.Price = &f
	}
	if f, ok := obj.number("stock", "quantity"); ok {
		v.Stock = int(f)
	}
	v.Size = obj.firstString("size")
	v.Color = obj.firstString("color")
	v.Thumbnail = obj.firstString("thumbnail", "image")

	if attrs, ok := obj["attributes"].(map[string]any); ok {
		v.Attributes = make(map[string]string, len(attrs))
		for k, raw := range attrs {
			if s, ok := raw.(string); ok {
				v.Attributes[k] = s
			}
		}
	}
	return v, true
}
