// Package services contains the application services the CLI drives: the
// credential lifecycle, catalog loading and mutation, and site settings.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/client"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/session"
)

// AuthService owns the credential lifecycle: login against the remote API,
// persistence across process restarts, and admin gating.
//
// Contract:
//   - Login: authenticate and persist the credential.
//   - Logout: clear the persisted slot and the in-memory credential.
//   - Current: the credential restored at construction or set by Login;
//     nil when logged out.
//   - IsAdmin: whether the current credential unlocks mutations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Credential, error)
	Logout(ctx context.Context) error
	Current() *models.Credential
	IsAdmin() bool
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Store

	mu   sync.Mutex
	cred *models.Credential
}

// NewAuthService restores any persisted credential immediately, so a
// process restart after a successful login comes back with admin controls
// without re-login.
func NewAuthService(c client.Client, s *session.Store) AuthService {
	return &authService{client: c, session: s, cred: s.Load()}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Credential, error) {
	cred, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Save(cred); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	a.mu.Lock()
	a.cred = cred
	a.mu.Unlock()
	return cred, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		return err
	}

	a.mu.Lock()
	a.cred = nil
	a.mu.Unlock()
	return nil
}

func (a *authService) Current() *models.Credential {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cred
}

func (a *authService) IsAdmin() bool {
	return a.Current().IsAdmin()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
