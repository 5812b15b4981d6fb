package cart

import (
	"log"
	"sync"
	"time"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/session"
)

// Registry hands out one Manager per browser session and routes auth
// events to the right one. It satisfies events.Listener so wiring it to
// the auth notifier at startup is all the coupling there is.
type Registry struct {
	mu      sync.Mutex
	service Service
	entries map[string]*registryEntry
}

type registryEntry struct {
	manager  *Manager
	provider *session.Provider
	lastSeen time.Time
}

func NewRegistry(service Service) *Registry {
	return &Registry{
		service: service,
		entries: make(map[string]*registryEntry),
	}
}

// Acquire returns the Manager owning the given session, creating one on
// first sight.
func (r *Registry) Acquire(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[sessionID]; ok {
		e.lastSeen = time.Now()
		return e.manager
	}

	storage := session.NewMemoryStorage()
	storage.Save(sessionID)
	provider := session.NewProvider(storage)
	e := &registryEntry{
		manager:  NewManager(r.service, provider),
		provider: provider,
		lastSeen: time.Now(),
	}
	r.entries[sessionID] = e
	return e.manager
}

// OnLogin implements events.Listener.
func (r *Registry) OnLogin(sessionID, userID string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	r.Acquire(sessionID).OnLogin(ctx, userID)
}

// OnLogout implements events.Listener. The manager is re-keyed under the
// fresh session identifier its provider mints, so the follow-up request
// carrying the new cookie still finds it.
func (r *Registry) OnLogout(sessionID string) {
	r.Logout(sessionID)
}

// Logout runs the logout protocol for a session and returns the
// replacement session identifier.
func (r *Registry) Logout(sessionID string) string {
	manager := r.Acquire(sessionID)
	manager.OnLogout()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return sessionID
	}
	newID := e.provider.SessionID()
	delete(r.entries, sessionID)
	e.lastSeen = time.Now()
	r.entries[newID] = e
	return newID
}

// Prune drops managers idle for longer than maxIdle. Run periodically;
// a pruned guest's cart still lives in the cart service and is refetched
// on their next request.
func (r *Registry) Prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	pruned := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			pruned++
		}
	}
	if pruned > 0 {
		log.Printf("[cart.registry] pruned %d idle cart session(s)", pruned)
	}
	return pruned
}

// Len reports the number of live managers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
