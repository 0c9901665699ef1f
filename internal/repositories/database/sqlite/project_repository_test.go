package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	"github.com/capexhub/capex_planning_app/internal/repositories/database/sqlite"
)

func openTestRepo(t *testing.T) portsrepo.ProjectRepository {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "capex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewSQLiteProjectRepository(db)
}

func sampleProject(id, code string) domain.Project {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Project{
		ProjectID:   id,
		BudgetYear:  2025,
		Country:     domain.CountryBR,
		Code:        code,
		Name:        "Pampo Platform Upgrade",
		StartDate:   "2025-01-15",
		EndDate:     "2025-11-30",
		Priority:    "Essential",
		ExpenseType: domain.CAPEX,
		Status:      domain.StatusDraft,
		Expenditures: domain.FinanceSchedule{
			Q1: decimal.NewFromInt(500),
			Y1: decimal.NewFromInt(120),
		},
		Comments: []domain.Comment{{
			CommentID: "c1",
			Author:    "Elena Rodriguez",
			Role:      domain.RoleCountryManager,
			Text:      "Please confirm the AFE reference.",
			Timestamp: now,
		}},
		AuditTrail: []domain.AuditLog{{
			AuditID:   "a1",
			Timestamp: now,
			User:      "Carlos Silva",
			Field:     "Project",
			OldValue:  "N/A",
			NewValue:  "Created",
			Stage:     domain.StatusDraft,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	original := sampleProject("p1", "BR-2025-TEdB-001")
	require.NoError(t, repo.SaveProject(ctx, original))

	loaded, err := repo.FindProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, original.Code, loaded.Code)
	assert.Equal(t, original.Status, loaded.Status)
	assert.True(t, loaded.Expenditures.Q1.Equal(decimal.NewFromInt(500)))
	require.Len(t, loaded.Comments, 1)
	require.Len(t, loaded.AuditTrail, 1)
	assert.Equal(t, "Created", loaded.AuditTrail[0].NewValue)
}

func TestSQLiteUpsert(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	p := sampleProject("p1", "BR-2025-TEdB-001")
	require.NoError(t, repo.SaveProject(ctx, p))

	p.Status = domain.StatusSubmitted
	p.UpdatedAt = p.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.SaveProject(ctx, p))

	loaded, err := repo.FindProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, loaded.Status)

	list, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLiteListOrder(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	second := sampleProject("p2", "BR-2025-TEdB-002")
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.SaveProject(ctx, second))
	require.NoError(t, repo.SaveProject(ctx, sampleProject("p1", "BR-2025-TEdB-001")))

	list, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ProjectID)
	assert.Equal(t, "p2", list[1].ProjectID)
}

func TestSQLiteFindMissing(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.FindProjectByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSQLiteDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveProject(ctx, sampleProject("p1", "BR-2025-TEdB-001")))
	require.NoError(t, repo.DeleteProject(ctx, "p1"))

	_, err := repo.FindProjectByID(ctx, "p1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an absent row is a no-op, matching the overwrite semantics.
	assert.NoError(t, repo.DeleteProject(ctx, "p1"))
}
