package session

import "sync"

// MemoryStorage keeps the session id in process memory. Used as the
// fallback when no durable storage is wired and by tests.
type MemoryStorage struct {
	mu sync.Mutex
	id string
	ok bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.ok
}

func (m *MemoryStorage) Save(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
	m.ok = true
	return nil
}
