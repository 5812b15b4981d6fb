package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PaymentService checks payment status with the external payment
// service after a gateway redirect.
type PaymentService struct {
	baseURL string
	client  *http.Client
}

func NewPaymentService(baseURL string, client *http.Client) *PaymentService {
	if client == nil {
		client = http.DefaultClient
	}
	return &PaymentService{baseURL: baseURL, client: client}
}

// PaymentCheck is whatever the payment service reports for an order,
// e.g. {"status":"PAID"} or {"status":"FAILED"}.
type PaymentCheck map[string]any

// CheckStatus verifies the result of a gateway redirect with the
// payment service.
func (s *PaymentService) CheckStatus(ctx context.Context, orderID, resultCode string) (PaymentCheck, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("resultCode", resultCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/payments/check-status?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("payment service: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payment service: check-status: status %d: %s", resp.StatusCode, string(raw))
	}

	var check PaymentCheck
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		return nil, fmt.Errorf("payment service: decode response: %w", err)
	}
	return check, nil
}
