package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// SessionStore is the production session backend. Each session is a single
// key session:<sid> holding the user id, expired by Redis itself.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Put(ctx context.Context, sid, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sid), userID, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sid string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionInvalid
		}
		return "", fmt.Errorf("session get: %w", err)
	}
	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
