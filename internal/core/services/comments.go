package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

var ErrParentCommentNotFound = errors.New("parent comment does not exist on this project")

// PostComment appends a discussion comment or reply to a project. A reply's
// parent must already exist on the same project, keeping the thread a
// forest. Comments are append-only; there is no edit or delete here.
//
// Discussion is deliberately not subject to the lock-date gate: reviewers
// keep talking about a proposal after the country's editing window closes.
func (s *projectService) PostComment(ctx context.Context, projectID string, req dto.PostCommentRequest, actor domain.User) (*domain.Comment, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	project, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		found := false
		for _, c := range project.Comments {
			if c.CommentID == *req.ParentID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrParentCommentNotFound)
		}
	}

	comment := domain.Comment{
		CommentID: uuid.NewString(),
		Author:    actor.Name,
		Role:      actor.Role,
		Text:      req.Text,
		Timestamp: s.now(),
		ParentID:  req.ParentID,
	}

	next := *project
	next.Comments = append(append([]domain.Comment{}, project.Comments...), comment)
	s.saveExisting(*project, next, actor.Name)

	return &comment, nil
}
