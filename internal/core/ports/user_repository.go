package ports

import (
	"context"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// UserRepository defines persistence for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListNamesByRole returns the names of all users holding the given
	// role, used to populate the admin assignment form.
	ListNamesByRole(ctx context.Context, role domain.Role) ([]string, error)
}
