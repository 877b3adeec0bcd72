package handler

import (
	"context"
	"fmt"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// memoryUserRepo backs the end-to-end handler tests with a real (if tiny)
// user store.
type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.nextID++
	created := *user
	created.ID = fmt.Sprintf("u%d", r.nextID)
	stored := created
	r.users[created.ID] = &stored
	return &created, nil
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) ListNamesByRole(_ context.Context, role domain.Role) ([]string, error) {
	var names []string
	for _, u := range r.users {
		if u.Role == role {
			names = append(names, u.Name)
		}
	}
	return names, nil
}
