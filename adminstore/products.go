package adminstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/bavien2005/AntaShop-Website/catalog"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetProducts lists admin products. With a remote product service
// configured the upstream catalog is tried first and normalized into the
// admin table shape; any upstream failure falls back to the local
// documents so the table never comes up empty-handed.
func (s *Store) GetProducts(ctx context.Context, filters models.ProductFilters) []models.AdminProduct {
	if s.remote != nil {
		params := url.Values{}
		if filters.Name != "" {
			params.Set("name", filters.Name)
		}
		if filters.Category != "" {
			params.Set("category", filters.Category)
		}
		raw, err := s.remote.GetProducts(ctx, params)
		if err == nil {
			products := make([]models.AdminProduct, 0, len(raw))
			for _, row := range catalog.DecodeRows(raw) {
				products = append(products, normalizeRemoteProduct(row))
			}
			return catalog.FilterAdminProducts(products, filters)
		}
		log.Printf("[adminstore.products] ⚠️ remote list failed, falling back to local documents: %v", err)
	}

	s.mu.RLock()
	local := make([]models.AdminProduct, len(s.products))
	copy(local, s.products)
	s.mu.RUnlock()
	return catalog.FilterAdminProducts(local, filters)
}

// GetProduct fetches one product, remote-first.
func (s *Store) GetProduct(ctx context.Context, id int64) (models.AdminProduct, error) {
	if s.remote != nil {
		raw, err := s.remote.GetProduct(ctx, strconv.FormatInt(id, 10))
		if err == nil {
			rows := catalog.DecodeRows([]json.RawMessage{raw})
			if len(rows) == 1 {
				return normalizeRemoteProduct(rows[0]), nil
			}
		} else {
			log.Printf("[adminstore.products] ⚠️ remote get failed, falling back: %v", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.AdminProduct{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// CreateProduct adds a product. Variant totals drive the roll-up: with
// variants present the stored quantity is their sum and the stored price
// is the cheapest variant.
func (s *Store) CreateProduct(ctx context.Context, input models.AdminProductInput) (models.AdminProduct, error) {
	if s.remote != nil {
		raw, err := s.remote.CreateProduct(ctx, remotePayload(input))
		if err == nil {
			rows := catalog.DecodeRows([]json.RawMessage{raw})
			if len(rows) == 1 {
				return normalizeRemoteProduct(rows[0]), nil
			}
		} else {
			log.Printf("[adminstore.products] ⚠️ remote create failed, falling back: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newID := int64(1)
	for _, p := range s.products {
		if p.ID >= newID {
			newID = p.ID + 1
		}
	}

	product := models.AdminProduct{
		ID:          newID,
		Name:        input.Name,
		Description: input.Description,
		Images:      input.Images,
		Category:    input.Category,
		Rating:      5,
		Status:      input.Status,
		CreatedAt:   time.Now().Format(time.RFC3339),
		Variants:    []models.AdminVariant{},
	}
	if len(product.Images) == 0 && input.Image != "" {
		product.Images = []string{input.Image}
	}
	if len(product.Images) > 0 {
		product.Thumbnail = product.Images[0]
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Sales != nil {
		product.Sales = *input.Sales
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}

	product.Variants = normalizeVariants(newID, input.Variants, product.Price)
	if len(product.Variants) > 0 {
		product.Quantity = variantQuantitySum(product.Variants)
		product.Price = cheapestVariantPrice(product.Variants, product.Price)
	}
	if product.Status == "" {
		if product.Quantity < 20 {
			product.Status = "low-stock"
		} else {
			product.Status = "active"
		}
	}

	s.products = append(s.products, product)
	s.persist(ctx, KeyProducts, s.products)
	return product, nil
}

// UpdateProduct shallow-merges the provided fields over the stored
// product. A supplied variant list is renormalized and re-drives the
// quantity and price roll-ups.
func (s *Store) UpdateProduct(ctx context.Context, id int64, input models.AdminProductInput) (models.AdminProduct, error) {
	if s.remote != nil {
		raw, err := s.remote.UpdateProduct(ctx, strconv.FormatInt(id, 10), remotePayload(input))
		if err == nil {
			rows := catalog.DecodeRows([]json.RawMessage{raw})
			if len(rows) == 1 {
				return normalizeRemoteProduct(rows[0]), nil
			}
		} else {
			log.Printf("[adminstore.products] ⚠️ remote update failed, falling back: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.AdminProduct{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}

	merged := s.products[idx]
	if input.Name != "" {
		merged.Name = input.Name
	}
	if input.Description != "" {
		merged.Description = input.Description
	}
	if input.Category != "" {
		merged.Category = input.Category
	}
	if input.Status != "" {
		merged.Status = input.Status
	}
	if len(input.Images) > 0 {
		merged.Images = input.Images
		merged.Thumbnail = input.Images[0]
	} else if input.Image != "" {
		merged.Images = []string{input.Image}
		merged.Thumbnail = input.Image
	}
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.Rating != nil {
		merged.Rating = *input.Rating
	}
	if input.Sales != nil {
		merged.Sales = *input.Sales
	}

	if input.Variants != nil {
		merged.Variants = normalizeVariants(merged.ID, input.Variants, merged.Price)
		merged.Quantity = variantQuantitySum(merged.Variants)
		merged.Price = cheapestVariantPrice(merged.Variants, merged.Price)
	} else if input.Quantity != nil {
		merged.Quantity = *input.Quantity
	}

	s.products[idx] = merged
	s.persist(ctx, KeyProducts, s.products)
	return merged, nil
}

// DeleteProduct removes a product, remote-first.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	if s.remote != nil {
		err := s.remote.DeleteProduct(ctx, strconv.FormatInt(id, 10))
		if err == nil {
			return nil
		}
		log.Printf("[adminstore.products] ⚠️ remote delete failed, falling back: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx, KeyProducts, s.products)
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// ProductStats summarizes the catalog for the admin dashboard cards.
func (s *Store) ProductStats(ctx context.Context) models.ProductStats {
	products := s.GetProducts(ctx, models.ProductFilters{})

	stats := models.ProductStats{TotalProducts: len(products)}
	var priceSum float64
	for _, p := range products {
		stats.TotalInventory += p.Quantity
		priceSum += p.Price
		switch catalog.StockStatus(p.Quantity) {
		case catalog.StockStatusOut:
			stats.OutOfStock++
		case catalog.StockStatusLow:
			stats.LowStockProducts++
		default:
			stats.ActiveProducts++
		}
	}
	if len(products) > 0 {
		stats.AveragePrice = priceSum / float64(len(products))
	}
	return stats
}

// normalizeVariants assigns deterministic fallback ids/skus and fills
// missing variant prices with the product price.
func normalizeVariants(productID int64, variants []models.AdminVariant, fallbackPrice float64) []models.AdminVariant {
	out := make([]models.AdminVariant, 0, len(variants))
	for i, v := range variants {
		if v.ID == "" {
			v.ID = fmt.Sprintf("%d-%d", productID, i+1)
		}
		if v.SKU == "" {
			v.SKU = fmt.Sprintf("SKU-%d-%d", productID, i+1)
		}
		if v.Price <= 0 {
			v.Price = fallbackPrice
		}
		out = append(out, v)
	}
	return out
}

func variantQuantitySum(variants []models.AdminVariant) int {
	total := 0
	for _, v := range variants {
		total += v.Quantity
	}
	return total
}

func cheapestVariantPrice(variants []models.AdminVariant, fallback float64) float64 {
	cheapest := 0.0
	for _, v := range variants {
		if v.Price <= 0 {
			continue
		}
		if cheapest == 0 || v.Price < cheapest {
			cheapest = v.Price
		}
	}
	if cheapest == 0 {
		return fallback
	}
	return cheapest
}

// normalizeRemoteProduct maps an upstream catalog row into the admin
// table shape the UI expects.
func normalizeRemoteProduct(row catalog.Row) models.AdminProduct {
	p := models.AdminProduct{
		Name:      row.Name(),
		Thumbnail: row.Thumbnail(),
		Category:  row.Category(),
		Rating:    5,
		Sales:     row.Sales(),
		CreatedAt: row.CreatedAt(),
	}
	if key, ok := row.ProductKey(); ok {
		if id, err := strconv.ParseInt(key, 10, 64); err == nil {
			p.ID = id
		}
	}
	if price, ok := row.Price(); ok {
		p.Price = price
	}
	if total, ok := row.ServerTotalStock(); ok {
		p.Quantity = total
	}
	if rating := row.Rating(); rating > 0 {
		p.Rating = rating
	}
	p.Status = catalogStatus(row, p.Quantity)
	if p.Thumbnail != "" {
		p.Images = []string{p.Thumbnail}
	}
	return p
}

func catalogStatus(row catalog.Row, quantity int) string {
	if s, ok := row["status"].(string); ok && s != "" {
		return s
	}
	if quantity <= catalog.LowStockThreshold {
		return "low-stock"
	}
	return "active"
}

// remotePayload formats a create/update input for the upstream product
// API.
func remotePayload(input models.AdminProductInput) map[string]any {
	payload := map[string]any{
		"name":        input.Name,
		"description": input.Description,
	}
	if input.Price != nil {
		payload["price"] = *input.Price
	}
	if input.Category != "" {
		payload["categories"] = []string{input.Category}
	}
	if len(input.Images) > 0 {
		payload["images"] = input.Images
	} else if input.Image != "" {
		payload["images"] = []string{input.Image}
	}
	if input.Variants != nil {
		payload["variants"] = input.Variants
	}
	if input.Quantity != nil {
		payload["totalStock"] = *input.Quantity
	}
	return payload
}
