package dto

import "github.com/capexhub/capex_planning_app/internal/core/domain"

// CreateUserRequest defines the data required to register a workflow user.
type CreateUserRequest struct {
	Name    string         `json:"name" validate:"required"`
	Role    domain.Role    `json:"role" validate:"required,oneof='Project Lead' 'Country Manager' Admin"`
	Country domain.Country `json:"country" validate:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name    *string         `json:"name"`
	Role    *domain.Role    `json:"role"`
	Country *domain.Country `json:"country"`
}
