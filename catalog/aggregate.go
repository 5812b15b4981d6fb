package catalog

import (
	"log"

	"github.com/google/uuid"

	"github.com/bavien2005/AntaShop-Website/models"
)

// Aggregate collapses raw product rows into one Product per distinct
// product identifier, preserving first-seen order. Rows that carry no
// identifier at all are a data-quality problem upstream: each one still
// becomes its own independent entry (two such rows are never merged),
// and they are returned separately so callers can report them.
func Aggregate(rows []Row) ([]models.Product, []Row) {
	var (
		order   []string
		byKey   = make(map[string]*models.Product)
		unkeyed []Row
	)

	for _, row := range rows {
		key, ok := row.ProductKey()
		if !ok {
			// Mint a throwaway key so the row renders, but never reuse
			// it; unrelated identifier-less rows must stay separate.
			key = "unidentified-" + uuid.NewString()
			unkeyed = append(unkeyed, row)
		}

		product, seen := byKey[key]
		if !seen {
			product = seedProduct(key, row)
			byKey[key] = product
			order = append(order, key)
		} else {
			mergeProductFields(product, row)
		}

		for _, v := range extractVariants(row) {
			appendVariant(product, v)
		}
	}

	products := make([]models.Product, 0, len(order))
	for _, key := range order {
		p := byKey[key]
		finalizeStock(p)
		products = append(products, *p)
	}

	if len(unkeyed) > 0 {
		log.Printf("[catalog.aggregate] ⚠️ %d product row(s) had no identifier; rendered as independent entries", len(unkeyed))
	}
	return products, unkeyed
}

func seedProduct(key string, row Row) *models.Product {
	p := &models.Product{
		ID:        key,
		Name:      row.Name(),
		Thumbnail: row.Thumbnail(),
		Category:  row.Category(),
		Brand:     row.Brand(),
		Rating:    row.Rating(),
		Sales:     row.Sales(),
		CreatedAt: row.CreatedAt(),
	}
	if p.Name == "" {
		p.Name = "Unnamed product"
	}
	if price, ok := row.Price(); ok {
		p.Price = price
	}
	if total, ok := row.ServerTotalStock(); ok {
		p.TotalStock = total
		p.HasServerStock = true
	}
	return p
}

// mergeProductFields overlays attributes from a later row for the same
// product. A field only overwrites when the new row actually supplies a
// value, mirroring a shallow object merge.
func mergeProductFields(p *models.Product, row Row) {
	if name := row.Name(); name != "" {
		p.Name = name
	}
	if thumb := row.Thumbnail(); thumb != "" {
		p.Thumbnail = thumb
	}
	if cat := row.Category(); cat != "" {
		p.Category = cat
	}
	if brand := row.Brand(); brand != "" {
		p.Brand = brand
	}
	if price, ok := row.Price(); ok {
		p.Price = price
	}
	if total, ok := row.ServerTotalStock(); ok {
		p.TotalStock = total
		p.HasServerStock = true
	}
	if rating := row.Rating(); rating > 0 {
		p.Rating = rating
	}
	if sales := row.Sales(); sales > 0 {
		p.Sales = sales
	}
	if created := row.CreatedAt(); created != "" && p.CreatedAt == "" {
		p.CreatedAt = created
	}
}

// appendVariant adds a variant unless one with the same identity is
// already present. Identity is the variant id, or the sku when no id
// exists.
func appendVariant(p *models.Product, v models.Variant) {
	identity := v.ID
	if identity == "" {
		identity = v.SKU
	}
	if identity != "" {
		for _, existing := range p.Variants {
			existingID := existing.ID
			if existingID == "" {
				existingID = existing.SKU
			}
			if existingID == identity {
				return
			}
		}
	}
	p.Variants = append(p.Variants, v)
}

// finalizeStock settles the product's total stock: a server-supplied
// total wins outright; otherwise the variants' stocks are summed. The
// two sources are never added together.
func finalizeStock(p *models.Product) {
	if p.HasServerStock {
		return
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	p.TotalStock = total
}
