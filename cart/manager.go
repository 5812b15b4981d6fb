package cart

import (
	"context"
	"log"
	"sync"

	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
	"github.com/bavien2005/AntaShop-Website/session"
)

// Service is the slice of the cart client the manager depends on.
// *services.CartService satisfies it; tests substitute a fake.
type Service interface {
	GetCurrentCart(ctx context.Context, userID, sessionID *string) (models.Cart, error)
	AddToCart(ctx context.Context, req models.AddToCartRequest) (models.Cart, error)
	RemoveItem(ctx context.Context, cartItemID string) error
	UpdateQuantity(ctx context.Context, req models.UpdateQuantityRequest) (models.Cart, error)
	MergeCart(ctx context.Context, sessionID, userID string) error
}

var _ Service = (*services.CartService)(nil)

// Manager owns one shopper's cart state: it keys requests by user id
// when authenticated and by the guest session id otherwise, runs the
// merge-once-per-login protocol on authentication, and resets everything
// on logout. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	service  Service
	sessions *session.Provider

	cart   models.Cart
	userID string
	merged bool
}

func NewManager(service Service, sessions *session.Provider) *Manager {
	return &Manager{
		service:  service,
		sessions: sessions,
		cart:     models.EmptyCart(),
	}
}

// FetchCart loads the authoritative cart, keyed by user identity when
// logged in and by the session identifier otherwise. A failed fetch
// degrades to an empty cart instead of surfacing the error; the cart
// display must never take the page down.
func (m *Manager) FetchCart(ctx context.Context) models.Cart {
	m.mu.Lock()
	userID, sessionID := m.identityLocked()
	m.mu.Unlock()

	fetched, err := m.service.GetCurrentCart(ctx, userID, sessionID)
	if err != nil {
		log.Printf("[cart.manager] ⚠️ fetch failed, falling back to empty cart: %v", err)
		fetched = models.EmptyCart()
	}
	if fetched.Items == nil {
		fetched.Items = []models.CartItem{}
	}

	m.mu.Lock()
	m.cart = fetched
	m.mu.Unlock()
	return fetched
}

// AddItem sends a normalized line to the cart service and replaces local
// state with the server's authoritative response.
func (m *Manager) AddItem(ctx context.Context, input models.AddItemInput) (models.Cart, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	m.mu.Lock()
	userID, sessionID := m.identityLocked()
	m.mu.Unlock()

	req := models.AddToCartRequest{
		UserID:      userID,
		SessionID:   sessionID,
		ProductID:   input.ProductID,
		VariantID:   input.VariantID,
		ProductName: input.Name,
		UnitPrice:   input.Price,
		Quantity:    input.Quantity,
	}
	updated, err := m.service.AddToCart(ctx, req)
	if err != nil {
		return models.Cart{}, err
	}
	if updated.Items == nil {
		updated.Items = []models.CartItem{}
	}

	m.mu.Lock()
	m.cart = updated
	m.mu.Unlock()
	return updated, nil
}

// RemoveItem deletes a line, then re-fetches the full cart. No
// optimistic local removal: server-computed totals must not drift.
func (m *Manager) RemoveItem(ctx context.Context, cartItemID string) (models.Cart, error) {
	if err := m.service.RemoveItem(ctx, cartItemID); err != nil {
		return models.Cart{}, err
	}
	return m.FetchCart(ctx), nil
}

// UpdateQuantity changes a line's quantity. It is a no-op while no cart
// exists yet.
func (m *Manager) UpdateQuantity(ctx context.Context, productID int64, variantID *string, quantity int) (models.Cart, error) {
	m.mu.Lock()
	cartID := m.cart.ID
	m.mu.Unlock()
	if cartID == nil {
		return m.Cart(), nil
	}

	updated, err := m.service.UpdateQuantity(ctx, models.UpdateQuantityRequest{
		CartID:    *cartID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	})
	if err != nil {
		return models.Cart{}, err
	}
	if updated.Items == nil {
		updated.Items = []models.CartItem{}
	}

	m.mu.Lock()
	m.cart = updated
	m.mu.Unlock()
	return updated, nil
}

// OnLogin records the authenticated user, runs the merge protocol and
// refreshes the cart.
func (m *Manager) OnLogin(ctx context.Context, userID string) {
	m.Authenticate(ctx, userID)
	m.FetchCart(ctx)
}

// Authenticate records the authenticated user and ensures the guest
// cart has been merged. A login by a different user than the one
// previously observed re-arms the merge flag; repeated logins by the
// same user do not.
func (m *Manager) Authenticate(ctx context.Context, userID string) {
	m.mu.Lock()
	if m.userID != userID {
		m.userID = userID
		m.merged = false
	}
	m.mu.Unlock()

	m.EnsureMerged(ctx)
}

// EnsureMerged folds the guest cart into the user's cart at most once
// per authentication session. An empty guest cart marks the session
// merged without calling merge at all. The flag is checked and set under
// the lock, so concurrent logins cannot trigger a second merge.
func (m *Manager) EnsureMerged(ctx context.Context) {
	m.mu.Lock()
	if m.userID == "" || m.merged {
		m.mu.Unlock()
		return
	}
	m.merged = true
	userID := m.userID
	m.mu.Unlock()

	sessionID := m.sessions.SessionID()
	guest, err := m.service.GetCurrentCart(ctx, nil, &sessionID)
	if err != nil {
		log.Printf("[cart.manager] ⚠️ could not inspect guest cart before merge: %v", err)
		return
	}
	if len(guest.Items) == 0 {
		return
	}

	if err := m.service.MergeCart(ctx, sessionID, userID); err != nil {
		log.Printf("[cart.manager] ❌ cart merge failed for user %s: %v", userID, err)
		return
	}
	log.Printf("[cart.manager] ✅ merged guest cart (%d items) into user %s", len(guest.Items), userID)
}

// OnLogout clears cart state and the merge flag, and issues a fresh
// session identifier so the next anonymous shopper on this session does
// not inherit the previous cart.
func (m *Manager) OnLogout() {
	m.mu.Lock()
	m.cart = models.EmptyCart()
	m.userID = ""
	m.merged = false
	m.mu.Unlock()

	m.sessions.Reset()
}

// SessionID returns the identifier currently keying guest requests.
func (m *Manager) SessionID() string {
	return m.sessions.SessionID()
}

// Cart returns the last known cart state.
func (m *Manager) Cart() models.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart
}

// TotalItems is the quantity sum across all lines.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, item := range m.cart.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is Σ(unitPrice × quantity) over all lines.
func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, item := range m.cart.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// identityLocked returns the user-xor-session identity pair. Caller
// holds the lock.
func (m *Manager) identityLocked() (userID, sessionID *string) {
	if m.userID != "" {
		id := m.userID
		return &id, nil
	}
	id := m.sessions.SessionID()
	return nil, &id
}
