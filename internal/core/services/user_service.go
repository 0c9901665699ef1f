package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	portssvc "github.com/capexhub/capex_planning_app/internal/core/ports/services"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user management service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.User) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	user := domain.User{
		UserID:  uuid.NewString(),
		Name:    req.Name,
		Role:    req.Role,
		Country: req.Country,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.User) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Country != nil {
		user.Country = *req.Country
	}

	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, actor domain.User) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}

func requireAdmin(actor domain.User) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("role %s: %w", actor.Role, apperrors.ErrForbidden)
	}
	return nil
}
