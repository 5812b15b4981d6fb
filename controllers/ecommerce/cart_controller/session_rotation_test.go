package cart_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/cart"
	"github.com/bavien2005/AntaShop-Website/events"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

// unauthorizedCartService rejects every mutation the way the upstream
// cart service does when the session token is no longer valid.
type unauthorizedCartService struct{}

func (unauthorizedCartService) GetCurrentCart(ctx context.Context, userID, sessionID *string) (models.Cart, error) {
	return models.EmptyCart(), nil
}

func (unauthorizedCartService) AddToCart(ctx context.Context, req models.AddToCartRequest) (models.Cart, error) {
	return models.Cart{}, services.ErrUnauthorized
}

func (unauthorizedCartService) RemoveItem(ctx context.Context, cartItemID string) error {
	return services.ErrUnauthorized
}

func (unauthorizedCartService) UpdateQuantity(ctx context.Context, req models.UpdateQuantityRequest) (models.Cart, error) {
	return models.Cart{}, services.ErrUnauthorized
}

func (unauthorizedCartService) MergeCart(ctx context.Context, sessionID, userID string) error {
	return nil
}

type logoutRecorder struct {
	sessions []string
}

func (r *logoutRecorder) OnLogin(sessionID, userID string) {}

func (r *logoutRecorder) OnLogout(sessionID string) {
	r.sessions = append(r.sessions, sessionID)
}

func TestUpstreamUnauthorizedRotatesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := cart.NewRegistry(unauthorizedCartService{})
	recorder := &logoutRecorder{}
	notifier := events.NewNotifier()
	notifier.Register(registry)
	notifier.Register(recorder)
	Init(registry, notifier)

	router := gin.New()
	router.Use(middleware.EnsureSession())
	router.POST("/cart/items", AddCartItem)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId": 7, "quantity": 1}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "guest-session-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	if len(recorder.sessions) != 1 || recorder.sessions[0] != "guest-session-1" {
		t.Fatalf("logout broadcasts = %v, want [guest-session-1]", recorder.sessions)
	}

	rotated := ""
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			rotated = ck.Value
		}
	}
	if rotated == "" {
		t.Fatal("no session cookie reissued after upstream 401")
	}
	if rotated == "guest-session-1" {
		t.Fatal("session id was not rotated after upstream 401")
	}

	// The rotated id owns the manager state now; the old key is gone.
	if got := registry.Acquire(rotated).SessionID(); got != rotated {
		t.Errorf("manager session = %q, want %q", got, rotated)
	}
	if registry.Len() != 1 {
		t.Errorf("registry holds %d managers, want 1", registry.Len())
	}
}
