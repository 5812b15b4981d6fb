package adminstore

import (
	"context"
	"fmt"
	"time"

	"github.com/bavien2005/AntaShop-Website/models"
)

// GetMessages lists customer messages, optionally only unread ones.
func (s *Store) GetMessages(ctx context.Context, unreadOnly bool) []models.AdminMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.AdminMessage, 0, len(s.messages))
	for _, m := range s.messages {
		if unreadOnly && m.Read {
			continue
		}
		list = append(list, m)
	}
	return list
}

func (s *Store) GetMessage(ctx context.Context, id int64) (models.AdminMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return models.AdminMessage{}, fmt.Errorf("message %d: %w", id, ErrNotFound)
}

func (s *Store) MarkMessageRead(ctx context.Context, id int64) (models.AdminMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			s.persist(ctx, KeyMessages, s.messages)
			return s.messages[i], nil
		}
	}
	return models.AdminMessage{}, fmt.Errorf("message %d: %w", id, ErrNotFound)
}

// ReplyToMessage appends an admin reply and marks the thread read.
func (s *Store) ReplyToMessage(ctx context.Context, id int64, text string) (models.AdminMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		reply := models.MessageReply{
			ID:      int64(len(s.messages[i].Replies) + 1),
			Sender:  "admin",
			Message: text,
			Date:    time.Now().Format(time.RFC3339),
		}
		s.messages[i].Replies = append(s.messages[i].Replies, reply)
		s.messages[i].Read = true
		s.persist(ctx, KeyMessages, s.messages)
		return s.messages[i], nil
	}
	return models.AdminMessage{}, fmt.Errorf("message %d: %w", id, ErrNotFound)
}
