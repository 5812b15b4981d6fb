package session

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Storage persists a session identifier across requests. The cookie-backed
// implementation lives in middleware; tests use an in-memory one.
type Storage interface {
	// Load returns the stored session id, if any.
	Load() (string, bool)
	// Save persists the session id.
	Save(id string) error
}

// Provider hands out a stable guest session identifier. The id is minted
// lazily on first use and survives storage failures by staying in memory
// for the lifetime of the provider.
type Provider struct {
	mu      sync.Mutex
	storage Storage
	id      string
}

func NewProvider(storage Storage) *Provider {
	return &Provider{storage: storage}
}

// SessionID returns the current session id, minting and persisting a new
// one when none exists yet.
func (p *Provider) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id != "" {
		return p.id
	}

	if p.storage != nil {
		if id, ok := p.storage.Load(); ok && id != "" {
			p.id = id
			return p.id
		}
	}

	p.id = newSessionID()
	if p.storage != nil {
		if err := p.storage.Save(p.id); err != nil {
			// Keep serving the in-memory id; it just won't outlive us.
			log.Printf("[session.provider] ⚠️ could not persist session id: %v", err)
		}
	}
	return p.id
}

// Reset discards the current id so the next SessionID call mints a fresh
// one. Called on logout so the next guest session starts clean.
func (p *Provider) Reset() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.id = newSessionID()
	if p.storage != nil {
		if err := p.storage.Save(p.id); err != nil {
			log.Printf("[session.provider] ⚠️ could not persist session id: %v", err)
		}
	}
	return p.id
}

func newSessionID() string {
	return uuid.NewString()
}
