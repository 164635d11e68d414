package ports

import (
	"context"
	"time"
)

// SessionStore holds the single valid refresh token per user. Put overwrites
// any previous entry, which is what invalidates older sessions' refresh
// capability: the refresh flow compares the submitted token byte-for-byte
// against the stored one.
type SessionStore interface {
	Put(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	// Get returns ("", nil) when no entry exists for the user.
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}
