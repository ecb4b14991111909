package ports

import (
	"context"
	"time"
)

// SessionStore persists server-side session state for the session strategy.
// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
type SessionStore interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}
