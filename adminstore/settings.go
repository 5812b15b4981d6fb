package adminstore

import (
	"context"

	"github.com/bavien2005/AntaShop-Website/models"
)

func (s *Store) GetSettings(ctx context.Context) models.AdminSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings shallow-merges the provided fields; nil pointers leave
// the stored value alone.
func (s *Store) UpdateSettings(ctx context.Context, input models.UpdateSettingsInput) models.AdminSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.StoreName != nil {
		s.settings.StoreName = *input.StoreName
	}
	if input.Email != nil {
		s.settings.Email = *input.Email
	}
	if input.Phone != nil {
		s.settings.Phone = *input.Phone
	}
	if input.Address != nil {
		s.settings.Address = *input.Address
	}
	if input.Notifications != nil {
		s.settings.Notifications = *input.Notifications
	}

	s.persist(ctx, KeySettings, s.settings)
	return s.settings
}
