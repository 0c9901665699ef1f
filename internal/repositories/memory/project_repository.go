// Package memory provides in-memory repository implementations. They back
// unit tests and the default single-process deployment, where the working
// set lives in the service layer anyway and durability is optional.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
)

// ProjectRepository is a map-backed project store with upsert semantics.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]domain.Project
}

// NewProjectRepository creates an empty in-memory project store.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[string]domain.Project)}
}

var _ portsrepo.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p)
	}
	return list, nil
}

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ProjectID] = project
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.projects, projectID)
	return nil
}
