// Package session holds per-visitor server-side state keyed by an opaque id
// carried in a signed cookie. The backing store is injected so tests can run
// against an embedded redis.
package session

import (
	"context"
	"errors"
	"time"
)

// TTL is the sliding lifetime of a session; every save or touch pushes the
// expiry out by this much.
const TTL = 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Session is the unit of state the store persists. UserID zero means the
// visitor is not logged in. Flash is a one-shot message key, cleared the
// first time it is read for rendering.
type Session struct {
	ID      string `json:"-"`
	UserID  int64  `json:"user_id,omitempty"`
	Captcha string `json:"captcha,omitempty"`
	Flash   string `json:"flash,omitempty"`
}

// Store is the persistence capability for sessions.
type Store interface {
	// Get returns the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Save writes the session and resets its TTL.
	Save(ctx context.Context, s *Session) error
	// Destroy removes the session. Destroying a missing session is not an error.
	Destroy(ctx context.Context, id string) error
	// Touch resets the TTL without rewriting the payload.
	Touch(ctx context.Context, id string) error
}
