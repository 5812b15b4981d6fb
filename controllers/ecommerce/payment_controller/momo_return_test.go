package payment_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/services"
)

func newReturnRouter(t *testing.T) (*gin.Engine, *adminstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "PAID"}`))
	}))
	t.Cleanup(backend.Close)

	s := adminstore.NewStore(context.Background(), adminstore.NewMemoryStorage(), nil)
	Init(services.NewPaymentService(backend.URL, backend.Client()), s)

	router := gin.New()
	router.GET("/payments/momo/return", MomoReturn)
	return router, s
}

func TestMomoReturnAcceptsAlternateParamSpellings(t *testing.T) {
	router, s := newReturnRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/payments/momo/return?partnerOrderId=ORD-9&request_id=REQ-7&status=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTemporaryRedirect)
	}

	result, found, err := s.TakePaymentResult(context.Background())
	if err != nil || !found {
		t.Fatalf("TakePaymentResult: found=%v err=%v", found, err)
	}
	if result["orderId"] != "ORD-9" {
		t.Errorf("orderId = %v, want ORD-9", result["orderId"])
	}
	if result["requestId"] != "REQ-7" {
		t.Errorf("requestId = %v, want REQ-7", result["requestId"])
	}
	if result["resultCode"] != "0" {
		t.Errorf("resultCode = %v, want 0", result["resultCode"])
	}
	if _, ok := result["status"]; !ok {
		t.Error("result is missing the upstream status check")
	}
}

func TestMomoReturnPrefersCanonicalParams(t *testing.T) {
	router, s := newReturnRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/payments/momo/return?orderId=ORD-1&partnerOrderId=ORD-2&resultCode=0&status=99&requestId=REQ-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTemporaryRedirect)
	}

	result, found, err := s.TakePaymentResult(context.Background())
	if err != nil || !found {
		t.Fatalf("TakePaymentResult: found=%v err=%v", found, err)
	}
	if result["orderId"] != "ORD-1" {
		t.Errorf("orderId = %v, want ORD-1", result["orderId"])
	}
	if result["resultCode"] != "0" {
		t.Errorf("resultCode = %v, want 0", result["resultCode"])
	}
	if result["requestId"] != "REQ-1" {
		t.Errorf("requestId = %v, want REQ-1", result["requestId"])
	}
}
