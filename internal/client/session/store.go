// Package session persists the auth credential across process restarts.
//
// The store owns a single file slot holding the serialized {token, user}
// pair. Load fails soft: any unreadable or structurally incomplete value is
// treated as logged-out, never surfaced as an error.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Store reads and writes the persisted credential slot. It is the sole
// writer of the slot.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted credential, or nil when the slot is empty,
// holds the literal strings "null" or "undefined", cannot be parsed, lacks
// a token, or carries an already-expired token.
func (s *Store) Load() *models.Credential {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" || text == "undefined" {
		return nil
	}

	var cred models.Credential
	if err := json.Unmarshal([]byte(text), &cred); err != nil {
		return nil
	}
	if cred.Token == "" {
		return nil
	}
	if tokenExpired(cred.Token) {
		return nil
	}
	return &cred
}

// Save persists the credential. Overwrites any previous value.
func (s *Store) Save(cred *models.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear empties the slot. Clearing an already-empty slot is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// tokenExpired reports whether the token is a JWT whose exp claim has
// passed. Opaque (non-JWT) tokens and tokens without exp are assumed
// valid; the server remains the authority either way.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
