package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bavien2005/AntaShop-Website/models"
)

// ErrUnauthorized is returned by every upstream client on a 401. The
// HTTP layer treats it globally: credentials are cleared and a logout
// is broadcast, independent of which call triggered it.
var ErrUnauthorized = errors.New("upstream returned 401 unauthorized")

// CartService is the REST client for the external cart service.
type CartService struct {
	baseURL string
	client  *http.Client
}

func NewCartService(baseURL string, client *http.Client) *CartService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CartService{baseURL: baseURL, client: client}
}

// GetCurrentCart fetches the cart keyed by user identity when userID is
// set, otherwise by the anonymous session identifier.
func (s *CartService) GetCurrentCart(ctx context.Context, userID, sessionID *string) (models.Cart, error) {
	q := url.Values{}
	if userID != nil {
		q.Set("userId", *userID)
	}
	if sessionID != nil {
		q.Set("sessionId", *sessionID)
	}

	var cart models.Cart
	if err := s.doJSON(ctx, http.MethodGet, "/api/cart/current?"+q.Encode(), nil, &cart); err != nil {
		return models.EmptyCart(), err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddToCart sends a normalized line and returns the server's
// authoritative cart.
func (s *CartService) AddToCart(ctx context.Context, req models.AddToCartRequest) (models.Cart, error) {
	var cart models.Cart
	if err := s.doJSON(ctx, http.MethodPost, "/api/cart/add", req, &cart); err != nil {
		return models.EmptyCart(), err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartItemID string) error {
	return s.doJSON(ctx, http.MethodDelete, "/api/cart/item/"+url.PathEscape(cartItemID), nil, nil)
}

func (s *CartService) UpdateQuantity(ctx context.Context, req models.UpdateQuantityRequest) (models.Cart, error) {
	var cart models.Cart
	if err := s.doJSON(ctx, http.MethodPut, "/api/cart/update", req, &cart); err != nil {
		return models.EmptyCart(), err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// MergeCart asks the cart service to reconcile the guest cart held
// under sessionID into the user's cart.
func (s *CartService) MergeCart(ctx context.Context, sessionID, userID string) error {
	req := models.MergeCartRequest{SessionID: sessionID, UserID: userID}
	return s.doJSON(ctx, http.MethodPost, "/api/cart/merge", req, nil)
}

func (s *CartService) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cart service: marshal request: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("cart service: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("cart service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cart service: %s %s: status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cart service: decode response: %w", err)
	}
	return nil
}
