package adminstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bavien2005/AntaShop-Website/models"
)

// GetNotifications lists admin notifications, optionally only unread.
func (s *Store) GetNotifications(ctx context.Context, unreadOnly bool) []models.AdminNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.AdminNotification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if unreadOnly && n.Read {
			continue
		}
		list = append(list, n)
	}
	return list
}

// AddNotification records a new notification, honoring the store
// settings' per-type switches.
func (s *Store) AddNotification(ctx context.Context, notifType, icon, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch notifType {
	case "order":
		if !s.settings.Notifications.NewOrders {
			return
		}
	case "message":
		if !s.settings.Notifications.Messages {
			return
		}
	}

	newID := int64(1)
	for _, n := range s.notifications {
		if n.ID >= newID {
			newID = n.ID + 1
		}
	}
	s.notifications = append([]models.AdminNotification{{
		ID:      newID,
		Type:    notifType,
		Icon:    icon,
		Title:   title,
		Message: message,
		Date:    time.Now().Format(time.RFC3339),
	}}, s.notifications...)
	s.persist(ctx, KeyNotifications, s.notifications)
}

func (s *Store) MarkNotificationRead(ctx context.Context, id int64) (models.AdminNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			s.persist(ctx, KeyNotifications, s.notifications)
			return s.notifications[i], nil
		}
	}
	return models.AdminNotification{}, fmt.Errorf("notification %d: %w", id, ErrNotFound)
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			marked++
		}
	}
	if marked > 0 {
		s.persist(ctx, KeyNotifications, s.notifications)
	}
	return marked
}

// PruneNotifications drops read notifications older than maxAge. Run
// from the maintenance cron.
func (s *Store) PruneNotifications(ctx context.Context, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	kept := s.notifications[:0]
	pruned := 0
	for _, n := range s.notifications {
		stamp, err := time.Parse(time.RFC3339, n.Date)
		if n.Read && err == nil && stamp.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, n)
	}
	s.notifications = kept
	if pruned > 0 {
		s.persist(ctx, KeyNotifications, s.notifications)
		log.Printf("[adminstore.notifications] pruned %d read notification(s)", pruned)
	}
	return pruned
}
