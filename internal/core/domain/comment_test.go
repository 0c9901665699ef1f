package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

func comment(id string, parentID *string, text string) domain.Comment {
	return domain.Comment{
		CommentID: id,
		Author:    "Alice",
		Role:      domain.RoleProjectLead,
		Text:      text,
		Timestamp: time.Now(),
		ParentID:  parentID,
	}
}

func ptr(s string) *string { return &s }

func TestBuildCommentForest(t *testing.T) {
	comments := []domain.Comment{
		comment("c1", nil, "first topic"),
		comment("c2", ptr("c1"), "reply to first"),
		comment("c3", nil, "second topic"),
		comment("c4", ptr("c2"), "nested reply"),
		comment("c5", ptr("c1"), "second reply to first"),
	}

	forest := domain.BuildCommentForest(comments)

	require.Len(t, forest, 2)
	assert.Equal(t, "c1", forest[0].Comment.CommentID)
	assert.Equal(t, "c3", forest[1].Comment.CommentID)

	require.Len(t, forest[0].Replies, 2)
	assert.Equal(t, "c2", forest[0].Replies[0].Comment.CommentID)
	assert.Equal(t, "c5", forest[0].Replies[1].Comment.CommentID)

	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, "c4", forest[0].Replies[0].Replies[0].Comment.CommentID)

	assert.Empty(t, forest[1].Replies)
}

func TestBuildCommentForestEmptyList(t *testing.T) {
	assert.Empty(t, domain.BuildCommentForest(nil))
}

func TestRepliesNeverAppearTopLevel(t *testing.T) {
	comments := []domain.Comment{
		comment("c1", nil, "topic"),
		comment("c2", ptr("c1"), "reply"),
	}

	forest := domain.BuildCommentForest(comments)

	require.Len(t, forest, 1)
	for _, node := range forest {
		assert.Nil(t, node.Comment.ParentID)
	}
}

func TestIsDecision(t *testing.T) {
	decision := comment("c1", nil, "**DECISION: APPROVED (CM)**\n\nLooks good.")
	discussion := comment("c2", nil, "What is the AFE reference?")

	assert.True(t, decision.IsDecision())
	assert.False(t, discussion.IsDecision())
}
