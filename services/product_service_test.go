package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetProductsAcceptsKnownResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id": 1}, {"id": 2}]`, 2},
		{"data envelope", `{"success": true, "data": [{"id": 1}]}`, 1},
		{"items envelope", `{"items": [{"id": 1}, {"id": 2}, {"id": 3}]}`, 3},
		{"empty envelope", `{"success": true, "data": []}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/product/all" {
					t.Errorf("path = %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			service := NewProductService(server.URL, server.Client())
			rows, err := service.GetProducts(context.Background(), nil)
			if err != nil {
				t.Fatalf("GetProducts: %v", err)
			}
			if len(rows) != tt.want {
				t.Errorf("rows = %d, want %d", len(rows), tt.want)
			}
		})
	}
}

func TestGetProductsErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "service rebuilding index"}`))
	}))
	defer server.Close()

	service := NewProductService(server.URL, server.Client())
	if _, err := service.GetProducts(context.Background(), nil); err == nil {
		t.Fatal("want error from error envelope")
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewProductService(server.URL, server.Client())
	_, err := service.GetProducts(context.Background(), nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGetProductUnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/product/p1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success": true, "data": {"id": "p1", "name": "KT7"}}`))
	}))
	defer server.Close()

	service := NewProductService(server.URL, server.Client())
	raw, err := service.GetProduct(context.Background(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"id": "p1", "name": "KT7"}` {
		t.Errorf("raw = %s", raw)
	}
}
