package adminstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Fixed document keys. Each key maps to one JSON document holding the
// whole collection.
const (
	KeyProducts      = "anta_admin_products"
	KeyOrders        = "anta_admin_orders"
	KeyMessages      = "anta_admin_messages"
	KeyNotifications = "anta_admin_notifications"
	KeySettings      = "anta_admin_settings"
	KeyPaymentResult = "MOMO_REDIRECT_RESULT"
)

// DocumentStorage persists whole JSON documents under fixed keys. The
// store treats any failure here as "storage unavailable" and keeps
// serving from its in-memory state.
type DocumentStorage interface {
	// Read returns the stored document; found is false when the key has
	// never been written.
	Read(ctx context.Context, key string) (doc []byte, found bool, err error)
	// Write stores the document, replacing any previous value.
	Write(ctx context.Context, key string, doc []byte) error
	// Delete removes the document. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// ───────────────────────────────────────────────
// Redis-backed storage (primary)
// ───────────────────────────────────────────────

type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) Read(ctx context.Context, key string) ([]byte, bool, error) {
	doc, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis read %s: %w", key, err)
	}
	return doc, true, nil
}

func (s *RedisStorage) Write(ctx context.Context, key string, doc []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, doc, 0).Err(); err != nil {
		return fmt.Errorf("redis write %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// ───────────────────────────────────────────────
// File-backed storage (fallback when Redis is down)
// ───────────────────────────────────────────────

type FileStorage struct {
	dir string
	mu  sync.Mutex
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file read %s: %w", key, err)
	}
	return doc, true, nil
}

func (s *FileStorage) Write(_ context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so a crash mid-write never corrupts the document.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return fmt.Errorf("file write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("file rename %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file delete %s: %w", key, err)
	}
	return nil
}

// ───────────────────────────────────────────────
// In-memory storage (tests, last-resort fallback)
// ───────────────────────────────────────────────

type MemoryStorage struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{docs: make(map[string][]byte)}
}

func (s *MemoryStorage) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, true, nil
}

func (s *MemoryStorage) Write(_ context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.docs[key] = cp
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
