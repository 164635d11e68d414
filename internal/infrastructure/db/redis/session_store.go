package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds the single valid refresh token per user, backed by
// Redis. Key format: refresh_token:<user_id>. SET overwrites, which is what
// gives new logins their session-stealing semantics.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Put(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Get returns the stored refresh token, or "" when the user has no session.
func (s *SessionStore) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load refresh token: %w", err)
	}
	return val, nil
}

func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *SessionStore) key(userID string) string {
	return "refresh_token:" + userID
}
