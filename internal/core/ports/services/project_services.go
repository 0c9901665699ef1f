package services

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

// ProjectReaderSvc defines read operations over the project working set.
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project by id.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects in the working set.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// SuggestProjectCode computes the next project code for a country and
	// start date against the current working set snapshot.
	SuggestProjectCode(ctx context.Context, country domain.Country, dateOrYear string) (string, error)
}

// ProjectWriterSvc defines mutating operations on projects.
type ProjectWriterSvc interface {
	// SaveProject upserts a project, generating the audit entries for the
	// change and appending them to the trail. The returned project carries
	// the final code, trail and updatedAt.
	SaveProject(ctx context.Context, project domain.Project, actor domain.User) (*domain.Project, error)

	// DeleteProject removes a project and everything it owns.
	DeleteProject(ctx context.Context, projectID string, actor domain.User) error

	// DuplicateProject clones a project into the next budget cycle and
	// returns the new project's id.
	DuplicateProject(ctx context.Context, projectID string, actor domain.User) (string, error)
}

// ProjectApprovalSvc is the approval state machine surface.
type ProjectApprovalSvc interface {
	// SubmitForReview moves a Draft or Returned-for-Revision project to
	// Submitted on behalf of a project lead.
	SubmitForReview(ctx context.Context, projectID string, actor domain.User) (*domain.Project, error)

	// Decide applies an approve / reject / request-changes action,
	// appending the decision comment and the status change as one save.
	Decide(ctx context.Context, projectID string, req dto.DecisionRequest, actor domain.User) (*domain.Project, error)
}

// ProjectCommentSvc posts governance discussion comments and replies.
type ProjectCommentSvc interface {
	PostComment(ctx context.Context, projectID string, req dto.PostCommentRequest, actor domain.User) (*domain.Comment, error)
}

// ProjectWritebackSvc exposes the state of the fire-and-forget persistence
// path so hosts can reconcile writes the repository rejected.
type ProjectWritebackSvc interface {
	FailedWrites() []dto.FailedWrite
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectApprovalSvc
	ProjectCommentSvc
	ProjectWritebackSvc
}
