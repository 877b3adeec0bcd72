// Package session provides the in-memory SessionStore used in tests and
// single-node development. Production deployments use the Redis-backed
// store instead.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/complaintdesk/portal/internal/core/domain"
)

type record struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore keeps session records in a mutex-guarded map. Expired entries
// are dropped lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]record
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]record),
		now:      time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, sid, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = record{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sid]
	if !ok {
		return "", domain.ErrSessionInvalid
	}
	if s.now().After(rec.expiresAt) {
		delete(s.sessions, sid)
		return "", domain.ErrSessionInvalid
	}
	return rec.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
