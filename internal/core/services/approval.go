package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/dto"
	"github.com/capexhub/capex_planning_app/internal/utils/budgeting"
)

var (
	ErrNoteRequired      = errors.New("decision notes are mandatory when rejecting or requesting changes")
	ErrInvalidTransition = errors.New("no workflow transition from the project's current status")
)

// defaultApprovalNote is recorded when an approver supplies no note.
const defaultApprovalNote = "Approved as per review."

// CanSubmit reports whether a user with the given role may submit a project
// in the given status for review.
func CanSubmit(status domain.Status, role domain.Role) bool {
	if role != domain.RoleProjectLead {
		return false
	}
	return status == domain.StatusDraft || status == domain.StatusRevision
}

// CanDecide reports whether a user with the given role is the eligible
// approver for a project in the given status. This is the single
// authorization guard for approval transitions: country managers decide on
// submitted projects, HQ (admin) decides on CM-approved ones.
func CanDecide(status domain.Status, role domain.Role) bool {
	switch status {
	case domain.StatusSubmitted:
		return role == domain.RoleCountryManager
	case domain.StatusCMApproved:
		return role == domain.RoleAdmin
	default:
		return false
	}
}

// SubmitForReview moves a Draft or Returned-for-Revision project into
// Submitted on behalf of its project lead.
func (s *projectService) SubmitForReview(ctx context.Context, projectID string, actor domain.User) (*domain.Project, error) {
	project, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEditable(ctx, project.Country, actor); err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleProjectLead {
		return nil, fmt.Errorf("role %s cannot submit for review: %w", actor.Role, apperrors.ErrForbidden)
	}
	if !CanSubmit(project.Status, actor.Role) {
		return nil, fmt.Errorf("cannot submit from status %q: %w", project.Status, ErrInvalidTransition)
	}

	next := *project
	next.Status = domain.StatusSubmitted
	saved := s.saveExisting(*project, next, actor.Name)

	s.logger.Info("project submitted for review",
		"project_code", saved.Code,
		"actor", actor.Name,
	)
	return &saved, nil
}

// Decide applies an approval action. The decision comment and the status
// change land in one save: either both happen or neither does.
func (s *projectService) Decide(ctx context.Context, projectID string, req dto.DecisionRequest, actor domain.User) (*domain.Project, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	note := strings.TrimSpace(req.Note)
	if note == "" && req.Action != dto.ActionApprove {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoteRequired)
	}

	project, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEditable(ctx, project.Country, actor); err != nil {
		return nil, err
	}
	if !CanDecide(project.Status, actor.Role) {
		if project.Status == domain.StatusSubmitted || project.Status == domain.StatusCMApproved {
			return nil, fmt.Errorf("role %s is not the eligible approver at stage %q: %w", actor.Role, project.Status, apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("no decision possible from status %q: %w", project.Status, ErrInvalidTransition)
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	newStatus, label := s.routeDecision(*project, req.Action, actor.Role, settings)

	if note == "" {
		note = defaultApprovalNote
	}
	decision := domain.Comment{
		CommentID: uuid.NewString(),
		Author:    actor.Name,
		Role:      actor.Role,
		Text:      fmt.Sprintf("%s %s**\n\n%s", domain.DecisionMarker, label, note),
		Timestamp: s.now(),
	}

	next := *project
	next.Status = newStatus
	next.Comments = append(append([]domain.Comment{}, project.Comments...), decision)
	saved := s.saveExisting(*project, next, actor.Name)

	s.logger.Info("approval decision recorded",
		"project_code", saved.Code,
		"action", string(req.Action),
		"new_status", string(saved.Status),
		"actor", actor.Name,
	)
	return &saved, nil
}

// routeDecision computes the target status and the decision label. The HQ
// threshold short-circuit lets a country manager final-approve projects
// whose total lifecycle cost is below the configured limit; a zero limit
// disables the short-circuit.
func (s *projectService) routeDecision(project domain.Project, action dto.ApprovalAction, role domain.Role, settings domain.GlobalSettings) (domain.Status, string) {
	switch action {
	case dto.ActionRequestChanges:
		return domain.StatusRevision, "CHANGES REQUESTED"
	case dto.ActionReject:
		return domain.StatusRejected, "REJECTED"
	}

	if project.Status == domain.StatusSubmitted && role == domain.RoleCountryManager {
		limit := settings.Thresholds.HQApprovalLimit
		total := budgeting.TotalLifecycleCost(project.Expenditures)
		if limit.IsPositive() && total.LessThan(limit) {
			return domain.StatusHQApproved, "APPROVED (CM - Final)"
		}
		return domain.StatusCMApproved, "APPROVED (CM)"
	}
	// CMApproved + Admin is the only other pairing CanDecide admits.
	return domain.StatusHQApproved, "APPROVED (HQ/Admin)"
}
