package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	portssvc "github.com/capexhub/capex_planning_app/internal/core/ports/services"
	"github.com/capexhub/capex_planning_app/internal/dto"
	"github.com/capexhub/capex_planning_app/internal/utils/audittrail"
	"github.com/capexhub/capex_planning_app/internal/utils/projectcode"
)

var (
	ErrCodeConflict   = errors.New("generated project code already belongs to another project")
	ErrCountryMissing = errors.New("project country is required")
)

// projectService owns the in-memory working set of projects and mirrors
// every mutation to the project repository. The persistence policy is
// write-through with best-effort durability: the local mutation is applied
// first and the repository call runs in the background; a rejected write is
// recorded and logged but never rolled back.
type projectService struct {
	projectRepo  portsrepo.ProjectRepository
	settingsRepo portsrepo.SettingsRepository
	logger       *slog.Logger
	now          func() time.Time
	syncPersist  bool

	mu       sync.RWMutex
	projects map[string]domain.Project
	loaded   bool

	failedMu sync.Mutex
	failed   []dto.FailedWrite
}

// ProjectServiceOption configures optional behavior of the project service.
type ProjectServiceOption func(*projectService)

// WithClock overrides the time source. Used by tests to pin timestamps.
func WithClock(now func() time.Time) ProjectServiceOption {
	return func(s *projectService) { s.now = now }
}

// WithSynchronousPersistence makes repository writes complete before the
// triggering call returns. Failures are still only recorded, not returned.
func WithSynchronousPersistence() ProjectServiceOption {
	return func(s *projectService) { s.syncPersist = true }
}

// WithLogger overrides the logger used for persistence failures.
func WithLogger(logger *slog.Logger) ProjectServiceOption {
	return func(s *projectService) { s.logger = logger }
}

// NewProjectService creates the project service backing every workflow
// operation: save/get/delete, approval transitions, comments, duplication
// and code suggestion.
func NewProjectService(projectRepo portsrepo.ProjectRepository, settingsRepo portsrepo.SettingsRepository, opts ...ProjectServiceOption) portssvc.ProjectSvcFacade {
	s := &projectService{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		logger:       slog.Default(),
		now:          time.Now,
		projects:     make(map[string]domain.Project),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// ensureLoaded populates the working set from the repository on first use.
func (s *projectService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load project working set: %w", err)
	}
	for _, p := range projects {
		s.projects[p.ProjectID] = p
	}
	s.loaded = true
	return nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Code < list[j].Code
	})
	return list, nil
}

func (s *projectService) SuggestProjectCode(ctx context.Context, country domain.Country, dateOrYear string) (string, error) {
	if country == "" {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrCountryMissing)
	}
	existing, err := s.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	return projectcode.Generate(country, dateOrYear, existing), nil
}

// SaveProject upserts a project. For a new project the creation audit entry
// is generated; for an existing one the tracked-field diff is appended to
// the trail. The code is allocated here when the project carries none and
// auto-generation has not been overridden.
func (s *projectService) SaveProject(ctx context.Context, project domain.Project, actor domain.User) (*domain.Project, error) {
	if err := dto.Validate(project); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := s.checkEditable(ctx, project.Country, actor); err != nil {
		return nil, err
	}

	now := s.now()
	if project.ProjectID == "" {
		project.ProjectID = uuid.NewString()
	}

	s.mu.Lock()
	prev, exists := s.projects[project.ProjectID]

	if project.Code == "" && !project.ManualCodeOverride {
		existing := make([]domain.Project, 0, len(s.projects))
		for _, p := range s.projects {
			existing = append(existing, p)
		}
		project.Code = projectcode.Generate(project.Country, project.StartDate, existing)
	}
	for _, p := range s.projects {
		if p.Code == project.Code && p.ProjectID != project.ProjectID {
			s.mu.Unlock()
			return nil, fmt.Errorf("code %s: %w: %w", project.Code, apperrors.ErrDuplicate, ErrCodeConflict)
		}
	}

	if !exists {
		if project.Status == "" {
			project.Status = domain.StatusDraft
		}
		project.CreatedAt = now
	} else {
		project.CreatedAt = prev.CreatedAt
	}

	var prevPtr *domain.Project
	if exists {
		prevPtr = &prev
	}
	logs := audittrail.Generate(prevPtr, project, actor.Name, now)
	if exists {
		project.AuditTrail = append(append([]domain.AuditLog{}, prev.AuditTrail...), logs...)
	} else {
		project.AuditTrail = logs
	}
	project.UpdatedAt = now

	s.projects[project.ProjectID] = project
	s.mu.Unlock()

	s.persist(project.ProjectID, "save", func(pctx context.Context) error {
		return s.projectRepo.SaveProject(pctx, project)
	})
	return &project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID string, actor domain.User) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	p, ok := s.projects[projectID]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}
	if err := s.checkEditable(ctx, p.Country, actor); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.projects, projectID)
	s.mu.Unlock()

	s.persist(projectID, "delete", func(pctx context.Context) error {
		return s.projectRepo.DeleteProject(pctx, projectID)
	})
	return nil
}

// FailedWrites returns the background persistence calls the repository has
// rejected since startup, oldest first.
func (s *projectService) FailedWrites() []dto.FailedWrite {
	s.failedMu.Lock()
	defer s.failedMu.Unlock()
	out := make([]dto.FailedWrite, len(s.failed))
	copy(out, s.failed)
	return out
}

// checkEditable enforces the read-only/lock-date gate for mutating
// operations. Admins bypass the gate.
func (s *projectService) checkEditable(ctx context.Context, country domain.Country, actor domain.User) error {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.EditableBy(actor.Role, country, s.now()) {
		return fmt.Errorf("country %s: %w", country, apperrors.ErrLocked)
	}
	return nil
}

// persist mirrors a working-set mutation to the repository. The call is
// fire-and-forget: the caller has already returned success to the user and
// a failure is only recorded for later reconciliation.
func (s *projectService) persist(projectID, operation string, write func(context.Context) error) {
	run := func() {
		if err := write(context.Background()); err != nil {
			s.logger.Error("background persistence failed",
				slog.String("project_id", projectID),
				slog.String("operation", operation),
				slog.String("error", err.Error()),
			)
			s.failedMu.Lock()
			s.failed = append(s.failed, dto.FailedWrite{
				ProjectID: projectID,
				Operation: operation,
				Error:     err.Error(),
				At:        s.now(),
			})
			s.failedMu.Unlock()
		}
	}
	if s.syncPersist {
		run()
		return
	}
	go run()
}

// saveExisting applies a workflow mutation (status change, appended
// comment) to an already-loaded project as one atomic save: audit entries
// for the change are generated and appended, updatedAt moves, the working
// set is updated and the write is mirrored to the repository. Callers have
// already performed their own validation and eligibility checks.
func (s *projectService) saveExisting(prev, next domain.Project, actorName string) domain.Project {
	now := s.now()
	logs := audittrail.Generate(&prev, next, actorName, now)
	next.AuditTrail = append(append([]domain.AuditLog{}, prev.AuditTrail...), logs...)
	next.UpdatedAt = now

	s.mu.Lock()
	s.projects[next.ProjectID] = next
	s.mu.Unlock()

	s.persist(next.ProjectID, "save", func(pctx context.Context) error {
		return s.projectRepo.SaveProject(pctx, next)
	})
	return next
}

// snapshot returns the current working set as a slice. Callers must not
// hold s.mu.
func (s *projectService) snapshot() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		list = append(list, p)
	}
	return list
}
