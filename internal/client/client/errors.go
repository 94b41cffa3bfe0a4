package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, non-success HTTP statuses
	// and unparsable response envelopes.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned locally when a gated operation is
	// attempted without a credential. The request never reaches the
	// network.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound signals that a requested product is absent even after a
	// fresh list fetch.
	ErrNotFound = errors.New("not found")
)

// RemoteError is a server-rejected request: the envelope came back with
// ok:false and a message meant for the user.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Message)
}
