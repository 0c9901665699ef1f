// Package pgsql implements the project store contract on PostgreSQL. Each
// project is persisted as one JSONB document keyed by id; a few columns are
// lifted out for listing order and operational queries. This is a
// key-addressed document store, not a relational decomposition.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

// NewPgxProjectRepository creates a PostgreSQL-backed project repository.
func NewPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{db: db}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	document, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project %s: %w", project.ProjectID, err)
	}

	query := `
        INSERT INTO projects (project_id, code, country, budget_year, status, document, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (project_id) DO UPDATE SET
            code = EXCLUDED.code,
            country = EXCLUDED.country,
            budget_year = EXCLUDED.budget_year,
            status = EXCLUDED.status,
            document = EXCLUDED.document,
            updated_at = EXCLUDED.updated_at;
    `
	_, err = r.db.Exec(ctx, query,
		project.ProjectID,
		project.Code,
		string(project.Country),
		project.BudgetYear,
		string(project.Status),
		document,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var document []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM projects WHERE project_id = $1`, projectID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	var project domain.Project
	if err := json.Unmarshal(document, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT document FROM projects ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		var project domain.Project
		if err := json.Unmarshal(document, &project); err != nil {
			return nil, fmt.Errorf("failed to decode project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	return nil
}
