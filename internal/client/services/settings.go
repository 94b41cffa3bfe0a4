package services

import (
	"context"
	"sync"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/client"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// SettingsService holds the current site settings and mutates them
// all-or-nothing: Save applies the new mapping optimistically and restores
// the previous one when the server rejects the update.
type SettingsService interface {
	Load(ctx context.Context) (models.SiteSettings, error)
	Current() models.SiteSettings
	Save(ctx context.Context, next models.SiteSettings) (models.SiteSettings, error)
}

type settingsService struct {
	client client.Client
	auth   AuthService

	mu      sync.Mutex
	current models.SiteSettings
}

func NewSettingsService(c client.Client, auth AuthService) SettingsService {
	return &settingsService{client: c, auth: auth, current: models.SiteSettings{}.WithDefaults()}
}

// Load fetches the settings and applies defaults for any missing field.
// A fetch failure keeps the defaults: the storefront stays presentable.
func (s *settingsService) Load(ctx context.Context) (models.SiteSettings, error) {
	fetched, err := s.client.GetSiteSettings(ctx)
	if err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	s.current = fetched.WithDefaults()
	out := s.current
	s.mu.Unlock()
	return out, nil
}

func (s *settingsService) Current() models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save replaces the settings optimistically, then confirms with the
// server. On rejection the previous mapping is restored and returned
// alongside the error.
func (s *settingsService) Save(ctx context.Context, next models.SiteSettings) (models.SiteSettings, error) {
	cred := s.auth.Current()
	if !cred.IsAdmin() {
		return s.Current(), client.ErrUnauthorized
	}

	s.mu.Lock()
	previous := s.current
	s.current = next.WithDefaults()
	s.mu.Unlock()

	saved, err := s.client.UpdateSiteSettings(ctx, next, cred)
	if err != nil {
		s.mu.Lock()
		s.current = previous
		s.mu.Unlock()
		return previous, err
	}

	s.mu.Lock()
	s.current = saved.WithDefaults()
	out := s.current
	s.mu.Unlock()
	return out, nil
}
