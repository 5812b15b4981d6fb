package models

// ═══════════════════════════════════════════════════════════
// Storefront (aggregated) product shapes
// ═══════════════════════════════════════════════════════════

// Variant is a purchasable configuration of a product with its own
// price and stock. Identity is ID or, if absent, SKU.
type Variant struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku"`
	Price      *float64          `json:"price"`
	Stock      int               `json:"stock"`
	Size       string            `json:"size,omitempty"`
	Color      string            `json:"color,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Thumbnail  string            `json:"thumbnail,omitempty"`
}

// Product is the grouped view built by the catalog aggregator: one
// record per distinct product identifier plus its variant list. It is
// derived, never authoritative, and rebuilt on every listing.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Thumbnail  string    `json:"thumbnail"`
	Category   string    `json:"category"`
	Brand      string    `json:"brand,omitempty"`
	Price      float64   `json:"price"`
	TotalStock int       `json:"totalStock"`
	Rating     float64   `json:"rating"`
	Sales      int       `json:"sales"`
	Variants   []Variant `json:"variants"`
	CreatedAt  string    `json:"createdAt,omitempty"`

	// HasServerStock records that TotalStock came from the backend
	// rather than a variant sum; the two are never added together.
	HasServerStock bool `json:"-"`
}

// ═══════════════════════════════════════════════════════════
// Admin document-store product shapes
// ═══════════════════════════════════════════════════════════

type AdminVariant struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type AdminProduct struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Images      []string       `json:"images"`
	Thumbnail   string         `json:"thumbnail"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	Category    string         `json:"category"`
	Rating      float64        `json:"rating"`
	Status      string         `json:"status"`
	Sales       int            `json:"sales"`
	Description string         `json:"description"`
	Variants    []AdminVariant `json:"variants"`
	CreatedAt   string         `json:"createdAt"`
}

// AdminProductInput is the create/update payload for the admin store.
// Zero-value fields are treated as "not provided" on update.
type AdminProductInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       *float64       `json:"price"`
	Quantity    *int           `json:"quantity"`
	Category    string         `json:"category"`
	Images      []string       `json:"images"`
	Image       string         `json:"image"`
	Status      string         `json:"status"`
	Rating      *float64       `json:"rating"`
	Sales       *int           `json:"sales"`
	Variants    []AdminVariant `json:"variants"`
}

type ProductStats struct {
	TotalProducts    int     `json:"total_products"`
	ActiveProducts   int     `json:"active_products"`
	LowStockProducts int     `json:"low_stock_products"`
	OutOfStock       int     `json:"out_of_stock"`
	AveragePrice     float64 `json:"average_price"`
	TotalInventory   int     `json:"total_inventory"`
}
