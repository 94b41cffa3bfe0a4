package models

import "strings"

// User carries the server-reported identity attached to a credential.
type User struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Credential is the persisted auth state: a token plus the user it belongs
// to. A credential is either absent (nil) or structurally complete; partial
// values are normalized to absent by the session store.
type Credential struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsAdmin reports whether the credential unlocks mutating operations.
// Safe to call on a nil credential.
func (c *Credential) IsAdmin() bool {
	return c != nil && c.Token != "" && strings.EqualFold(c.User.Role, "admin")
}
