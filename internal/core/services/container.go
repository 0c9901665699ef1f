package services

import (
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	portssvc "github.com/capexhub/capex_planning_app/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies. Project service options (clock, synchronous persistence)
// are forwarded so hosts and tests can pin behavior.
func NewContainer(repos *portsrepo.RepositoryProvider, opts ...ProjectServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Project:  NewProjectService(repos.ProjectRepo, repos.SettingsRepo, opts...),
		User:     NewUserService(repos.UserRepo),
		Settings: NewSettingsService(repos.SettingsRepo),
	}
}
