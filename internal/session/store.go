package session

import (
	"context"
)

// Store defines how sessions are persisted and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	// Get returns the session with the given id, or (nil, nil) when it
	// does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}
