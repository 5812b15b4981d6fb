package adminstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"sync"

	"github.com/bavien2005/AntaShop-Website/models"
)

// ErrNotFound is returned when a lookup misses; handlers map it to 404.
var ErrNotFound = errors.New("not found")

// RemoteProducts is the slice of the product client the store uses for
// its remote-first product path. *services.ProductService satisfies it.
type RemoteProducts interface {
	GetProducts(ctx context.Context, params url.Values) ([]json.RawMessage, error)
	GetProduct(ctx context.Context, id string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, payload any) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, id string, payload any) (json.RawMessage, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Store is the admin persistence layer: an explicit, injectable object
// holding the product/order/message/notification/settings collections,
// each persisted as one JSON document in the injected DocumentStorage.
// When a remote product service is configured, product operations try it
// first and fall back to the local documents.
type Store struct {
	mu      sync.RWMutex
	storage DocumentStorage
	remote  RemoteProducts

	products      []models.AdminProduct
	orders        []models.AdminOrder
	messages      []models.AdminMessage
	notifications []models.AdminNotification
	settings      models.AdminSettings
}

// NewStore builds a store, hydrating every collection from storage.
// A missing or unreadable document falls back to the seed data; storage
// trouble must never prevent the admin UI from serving.
func NewStore(ctx context.Context, storage DocumentStorage, remote RemoteProducts) *Store {
	s := &Store{
		storage: storage,
		remote:  remote,
	}
	loadDoc(ctx, storage, KeyProducts, &s.products, defaultProducts)
	loadDoc(ctx, storage, KeyOrders, &s.orders, defaultOrders)
	loadDoc(ctx, storage, KeyMessages, &s.messages, defaultMessages)
	loadDoc(ctx, storage, KeyNotifications, &s.notifications, defaultNotifications)
	loadDoc(ctx, storage, KeySettings, &s.settings, defaultSettings)
	return s
}

func loadDoc[T any](ctx context.Context, storage DocumentStorage, key string, target *T, defaults func() T) {
	if storage != nil {
		doc, found, err := storage.Read(ctx, key)
		if err != nil {
			log.Printf("[adminstore] ⚠️ reading %s failed, using defaults: %v", key, err)
		} else if found {
			if err := json.Unmarshal(doc, target); err == nil {
				return
			}
			log.Printf("[adminstore] ⚠️ document %s is corrupt, using defaults", key)
		}
	}
	*target = defaults()
}

// persist writes one collection's document. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session.
func (s *Store) persist(ctx context.Context, key string, value any) {
	if s.storage == nil {
		return
	}
	doc, err := json.Marshal(value)
	if err != nil {
		log.Printf("[adminstore] ❌ marshal %s: %v", key, err)
		return
	}
	if err := s.storage.Write(ctx, key, doc); err != nil {
		log.Printf("[adminstore] ⚠️ persisting %s failed: %v", key, err)
	}
}

// Snapshot persists every collection. Run from the maintenance cron so
// a crash loses at most one snapshot interval of in-memory edits.
func (s *Store) Snapshot(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.persist(ctx, KeyProducts, s.products)
	s.persist(ctx, KeyOrders, s.orders)
	s.persist(ctx, KeyMessages, s.messages)
	s.persist(ctx, KeyNotifications, s.notifications)
	s.persist(ctx, KeySettings, s.settings)
}

// SavePaymentResult stores a one-shot external-payment redirect result.
func (s *Store) SavePaymentResult(ctx context.Context, result map[string]any) error {
	if s.storage == nil {
		return nil
	}
	doc, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, KeyPaymentResult, doc)
}

// TakePaymentResult returns the stored redirect result and deletes it,
// so it is consumed exactly once.
func (s *Store) TakePaymentResult(ctx context.Context) (map[string]any, bool, error) {
	if s.storage == nil {
		return nil, false, nil
	}
	doc, found, err := s.storage.Read(ctx, KeyPaymentResult)
	if err != nil || !found {
		return nil, false, err
	}
	var result map[string]any
	if err := json.Unmarshal(doc, &result); err != nil {
		return nil, false, err
	}
	if err := s.storage.Delete(ctx, KeyPaymentResult); err != nil {
		log.Printf("[adminstore] ⚠️ could not clear payment result: %v", err)
	}
	return result, true, nil
}
