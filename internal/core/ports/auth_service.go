package ports

import (
	"context"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// RegisterInput carries the validated registration form fields. The
// password is plaintext here and must never survive past hashing.
type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
	Role     domain.Role
}

// AuthService is the authentication core: credential verification plus the
// session lifecycle (issue, resolve, revoke).
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Authenticate returns domain.ErrInvalidCredentials for both an
	// unknown username and a wrong password.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// IssueSession creates a server-side session record for the user and
	// returns the signed token to be set as a cookie.
	IssueSession(ctx context.Context, user *domain.User) (string, error)
	// ResolveSession verifies the token, looks up the session record and
	// re-fetches the user by id.
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
	// RevokeSession deletes the session record. Idempotent.
	RevokeSession(ctx context.Context, token string) error
}
