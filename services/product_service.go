package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ProductService is the REST client for the product service. Response
// shapes vary between deployments ({success,data:[...]}, {items:[...]}
// or a bare array), so everything is decoded tolerantly into raw rows
// and handed to the catalog aggregator.
type ProductService struct {
	baseURL string
	client  *http.Client
}

func NewProductService(baseURL string, client *http.Client) *ProductService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ProductService{baseURL: baseURL, client: client}
}

// listEnvelope covers the known wrappers around a product list.
type listEnvelope struct {
	Success *bool             `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Items   []json.RawMessage `json:"items"`
	Error   string            `json:"error"`
}

// GetProducts fetches the product list, with optional query filters
// forwarded verbatim.
func (s *ProductService) GetProducts(ctx context.Context, params url.Values) ([]json.RawMessage, error) {
	path := "/api/product/all"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return s.fetchList(ctx, path)
}

// SearchProducts runs a text search on the product service.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("q", query)
	return s.fetchList(ctx, "/api/product/search?"+q.Encode())
}

// GetProduct fetches a single product row by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (json.RawMessage, error) {
	raw, err := s.get(ctx, "/api/product/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	// Either {success,data:{...}} or the bare product object.
	var wrapped struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		return wrapped.Data, nil
	}
	return raw, nil
}

// CreateProduct, UpdateProduct and DeleteProduct are used by the admin
// store's remote fallback path.
func (s *ProductService) CreateProduct(ctx context.Context, payload any) (json.RawMessage, error) {
	return s.send(ctx, http.MethodPost, "/api/product/add", payload)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	return s.send(ctx, http.MethodPut, "/api/product/update/"+url.PathEscape(id), payload)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.send(ctx, http.MethodDelete, "/api/product/delete/"+url.PathEscape(id), nil)
	return err
}

func (s *ProductService) fetchList(ctx context.Context, path string) ([]json.RawMessage, error) {
	raw, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}

	// Bare array first, then the known envelopes.
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("product service: unexpected response shape: %w", err)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	if env.Items != nil {
		return env.Items, nil
	}
	if env.Error != "" {
		return nil, fmt.Errorf("product service: %s", env.Error)
	}
	return []json.RawMessage{}, nil
}

func (s *ProductService) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("product service: build request: %w", err)
	}
	return s.do(req)
}

func (s *ProductService) send(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("product service: marshal payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("product service: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *ProductService) do(req *http.Request) (json.RawMessage, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("product service: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("product service: read response: %w", err)
	}
	return raw, nil
}
