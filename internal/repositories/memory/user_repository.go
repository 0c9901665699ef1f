package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
)

// UserRepository is a map-backed user store.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository creates an in-memory user store, optionally pre-seeded.
func NewUserRepository(seed ...domain.User) *UserRepository {
	r := &UserRepository{users: make(map[string]domain.User)}
	for _, u := range seed {
		r.users[u.UserID] = u
	}
	return r
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return &u, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}
