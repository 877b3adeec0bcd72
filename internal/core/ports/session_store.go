package ports

import (
	"context"
	"time"
)

// SessionStore maps opaque session ids to user ids with a TTL. The id is
// the only thing persisted server-side; the full user record is re-fetched
// on every request so role changes take effect on the next request.
//
// Two implementations exist: a Redis-backed store for production and an
// in-memory store for tests and single-node development.
type SessionStore interface {
	// Put records sid → userID, expiring after ttl.
	Put(ctx context.Context, sid, userID string, ttl time.Duration) error
	// Get returns the user id for sid, or domain.ErrSessionInvalid when
	// the session is unknown or expired.
	Get(ctx context.Context, sid string) (string, error)
	// Delete revokes sid. Deleting an unknown sid is not an error.
	Delete(ctx context.Context, sid string) error
}
