package dto

import (
	"time"
)

// ApprovalAction identifies the decision a reviewer takes on a project.
type ApprovalAction string

const (
	ActionApprove        ApprovalAction = "APPROVE"
	ActionReject         ApprovalAction = "REJECT"
	ActionRequestChanges ApprovalAction = "REQUEST_CHANGES"
)

// DecisionRequest carries an approval decision. The note is mandatory for
// reject and request-changes; the service enforces that rule because it
// depends on the action, not the field alone.
type DecisionRequest struct {
	Action ApprovalAction `json:"action" validate:"required,oneof=APPROVE REJECT REQUEST_CHANGES"`
	Note   string         `json:"note"`
}

// PostCommentRequest carries a new discussion comment or reply.
type PostCommentRequest struct {
	Text     string  `json:"text" validate:"required"`
	ParentID *string `json:"parentID,omitempty"`
}

// FailedWrite describes one background persistence call that was rejected
// by the repository after the in-memory mutation had already been applied.
type FailedWrite struct {
	ProjectID string    `json:"projectID"`
	Operation string    `json:"operation"` // "save" or "delete"
	Error     string    `json:"error"`
	At        time.Time `json:"at"`
}
