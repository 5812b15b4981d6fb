package models

// Cart is the authoritative cart state as returned by the cart service.
// It is replaced wholesale on every fetch; nothing mutates it in place.
type Cart struct {
	ID    *string    `json:"id"`
	Items []CartItem `json:"items"`
}

type CartItem struct {
	CartItemID  string  `json:"cartItemId"`
	ProductID   int64   `json:"productId"`
	VariantID   *string `json:"variantId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

// EmptyCart returns the degraded/default cart state used whenever a
// fetch fails or the session has no cart yet.
func EmptyCart() Cart {
	return Cart{ID: nil, Items: []CartItem{}}
}

// AddToCartRequest is the normalized line sent to the cart service.
// Exactly one of UserID / SessionID is set.
type AddToCartRequest struct {
	UserID      *string `json:"userId"`
	SessionID   *string `json:"sessionId"`
	ProductID   int64   `json:"productId"`
	VariantID   *string `json:"variantId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

type UpdateQuantityRequest struct {
	CartID    string  `json:"cartId"`
	ProductID int64   `json:"productId"`
	VariantID *string `json:"variantId"`
	Quantity  int     `json:"quantity"`
}

type MergeCartRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// AddItemInput is what the storefront sends when adding a product line.
type AddItemInput struct {
	ProductID int64   `json:"productId" binding:"required"`
	VariantID *string `json:"variantId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
