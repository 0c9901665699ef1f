package services

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

// UserSvcFacade covers admin management of workflow users. The "current"
// user is a host-side selection; the core only ever sees an explicit actor.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser registers a new user. Admin only.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.User) (*domain.User, error)

	// UpdateUser edits an existing user. Admin only.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.User) (*domain.User, error)

	// DeleteUser removes a user. Admin only.
	DeleteUser(ctx context.Context, userID string, actor domain.User) error
}
