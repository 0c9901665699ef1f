package repositories

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// UserRepository defines persistence operations for workflow participants.
type UserRepository interface {
	// FindUserByID retrieves a user by id, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// SaveUser persists a user with upsert semantics.
	SaveUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}
