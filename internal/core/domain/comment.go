package domain

import (
	"strings"
	"time"
)

// DecisionMarker prefixes the body of comments emitted by the approval
// state machine so the UI can distinguish decisions from discussion.
const DecisionMarker = "**DECISION:"

// Comment is a single entry in a project's governance discussion. Comments
// are append-only and form a forest of reply threads via ParentID.
type Comment struct {
	CommentID string    `json:"commentID"` // Primary Key (UUID)
	Author    string    `json:"author"`
	Role      Role      `json:"role"` // captured at posting time
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	ParentID  *string   `json:"parentID,omitempty"` // references another comment on the same project
}

// IsDecision reports whether the comment was emitted by an approval action.
func (c Comment) IsDecision() bool {
	return strings.Contains(c.Text, DecisionMarker)
}

// CommentThread is one node of the reconstructed discussion forest.
type CommentThread struct {
	Comment Comment
	Replies []CommentThread
}

// BuildCommentForest reconstructs the reply forest from a project's flat
// comment list: top-level comments (no parent) in posting order, each with
// its replies nested recursively.
func BuildCommentForest(comments []Comment) []CommentThread {
	var forest []CommentThread
	for _, c := range comments {
		if c.ParentID == nil {
			forest = append(forest, CommentThread{
				Comment: c,
				Replies: buildReplies(c.CommentID, comments),
			})
		}
	}
	return forest
}

func buildReplies(parentID string, comments []Comment) []CommentThread {
	var replies []CommentThread
	for _, c := range comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			replies = append(replies, CommentThread{
				Comment: c,
				Replies: buildReplies(c.CommentID, comments),
			})
		}
	}
	return replies
}
