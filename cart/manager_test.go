package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/session"
)

// fakeCartService counts calls and serves canned carts so tests can
// assert on the merge protocol without a real backend.
type fakeCartService struct {
	guestCart  models.Cart
	userCart   models.Cart
	fetchErr   error
	mergeErr   error
	mergeCalls int
	fetchCalls int
}

func (f *fakeCartService) GetCurrentCart(ctx context.Context, userID, sessionID *string) (models.Cart, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return models.Cart{}, f.fetchErr
	}
	if userID != nil {
		return f.userCart, nil
	}
	return f.guestCart, nil
}

func (f *fakeCartService) AddToCart(ctx context.Context, req models.AddToCartRequest) (models.Cart, error) {
	cart := f.guestCart
	if req.UserID != nil {
		cart = f.userCart
	}
	cart.Items = append(cart.Items, models.CartItem{
		CartItemID:  "line-new",
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
	})
	return cart, nil
}

func (f *fakeCartService) RemoveItem(ctx context.Context, cartItemID string) error {
	return nil
}

func (f *fakeCartService) UpdateQuantity(ctx context.Context, req models.UpdateQuantityRequest) (models.Cart, error) {
	return f.userCart, nil
}

func (f *fakeCartService) MergeCart(ctx context.Context, sessionID, userID string) error {
	f.mergeCalls++
	return f.mergeErr
}

func cartWithItems(n int) models.Cart {
	id := "cart-1"
	cart := models.Cart{ID: &id, Items: []models.CartItem{}}
	for i := 0; i < n; i++ {
		cart.Items = append(cart.Items, models.CartItem{
			CartItemID: "line",
			ProductID:  int64(i + 1),
			UnitPrice:  100,
			Quantity:   1,
		})
	}
	return cart
}

func newTestManager(service Service) *Manager {
	return NewManager(service, session.NewProvider(session.NewMemoryStorage()))
}

func TestAuthenticateMergesAtMostOnce(t *testing.T) {
	fake := &fakeCartService{guestCart: cartWithItems(2)}
	m := newTestManager(fake)

	m.Authenticate(context.Background(), "user-1")
	m.Authenticate(context.Background(), "user-1")
	m.Authenticate(context.Background(), "user-1")

	if fake.mergeCalls != 1 {
		t.Fatalf("mergeCalls = %d, want 1", fake.mergeCalls)
	}
}

func TestAuthenticateDifferentUserReArmsMerge(t *testing.T) {
	fake := &fakeCartService{guestCart: cartWithItems(1)}
	m := newTestManager(fake)

	m.Authenticate(context.Background(), "user-1")
	m.Authenticate(context.Background(), "user-2")

	if fake.mergeCalls != 2 {
		t.Fatalf("mergeCalls = %d, want 2 (one per distinct user)", fake.mergeCalls)
	}
}

func TestEmptyGuestCartSkipsMergeCall(t *testing.T) {
	fake := &fakeCartService{guestCart: models.EmptyCart()}
	m := newTestManager(fake)

	m.Authenticate(context.Background(), "user-1")
	if fake.mergeCalls != 0 {
		t.Fatalf("mergeCalls = %d, want 0 for an empty guest cart", fake.mergeCalls)
	}

	// The session still counts as merged.
	m.Authenticate(context.Background(), "user-1")
	if fake.fetchCalls != 1 {
		t.Fatalf("fetchCalls = %d, want 1 (re-login must not re-inspect)", fake.fetchCalls)
	}
}

func TestFetchCartDegradesToEmpty(t *testing.T) {
	fake := &fakeCartService{fetchErr: errors.New("upstream down")}
	m := newTestManager(fake)

	got := m.FetchCart(context.Background())
	if got.ID != nil {
		t.Errorf("cart ID = %v, want nil", *got.ID)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("cart items = %v, want empty non-nil slice", got.Items)
	}
}

func TestUpdateQuantityNoopWithoutCart(t *testing.T) {
	fake := &fakeCartService{}
	m := newTestManager(fake)

	got, err := m.UpdateQuantity(context.Background(), 42, nil, 3)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(got.Items) != 0 {
		t.Errorf("items = %d, want 0 (no cart yet)", len(got.Items))
	}
}

func TestLogoutRotatesSessionAndClearsState(t *testing.T) {
	fake := &fakeCartService{guestCart: cartWithItems(2), userCart: cartWithItems(3)}
	m := newTestManager(fake)

	before := m.SessionID()
	m.OnLogin(context.Background(), "user-1")
	if got := m.TotalItems(); got != 3 {
		t.Fatalf("TotalItems after login = %d, want 3", got)
	}

	m.OnLogout()
	if after := m.SessionID(); after == before {
		t.Errorf("session id not rotated on logout")
	}
	if got := m.TotalItems(); got != 0 {
		t.Errorf("TotalItems after logout = %d, want 0", got)
	}

	// The logged-out shopper must merge again on the next login.
	m.OnLogin(context.Background(), "user-1")
	if fake.mergeCalls != 2 {
		t.Errorf("mergeCalls = %d, want 2 (merge flag cleared by logout)", fake.mergeCalls)
	}
}

func TestTotalsSumLines(t *testing.T) {
	fake := &fakeCartService{}
	m := newTestManager(fake)
	id := "cart-9"
	fake.guestCart = models.Cart{ID: &id, Items: []models.CartItem{
		{CartItemID: "a", UnitPrice: 1500000, Quantity: 2},
		{CartItemID: "b", UnitPrice: 990000, Quantity: 1},
	}}

	m.FetchCart(context.Background())
	if got := m.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
	if got := m.TotalPrice(); got != 3990000 {
		t.Errorf("TotalPrice = %v, want 3990000", got)
	}
}
