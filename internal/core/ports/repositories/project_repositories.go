package repositories

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its unique identifier.
	// Implementations return apperrors.ErrNotFound when no project exists.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves the full project set. The backing store may be
	// slow or paginated; the core treats this as eventually returning all
	// projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a project with upsert semantics: insert when the
	// id is absent, otherwise full replacement of the stored record.
	SaveProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project and everything it owns.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepository combines the read and write halves of the key-addressed
// project store contract. The far side is a host-application concern.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
