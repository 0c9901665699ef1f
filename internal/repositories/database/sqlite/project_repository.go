// Package sqlite implements the project store contract on an embedded
// SQLite database, the natural backend for the single-editor desktop-grade
// deployments this tool targets. Projects are stored as JSON documents
// keyed by id, mirroring the pgsql adapter.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    project_id  TEXT PRIMARY KEY,
    code        TEXT NOT NULL,
    country     TEXT NOT NULL,
    budget_year INTEGER NOT NULL,
    status      TEXT NOT NULL,
    document    TEXT NOT NULL,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_code ON projects(code);
`

// OpenDB opens (and if necessary creates) the SQLite database at the given
// path, enables WAL mode and applies the schema. ":memory:" is supported.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return db, nil
}

type SQLiteProjectRepository struct {
	db *sql.DB
}

// NewSQLiteProjectRepository creates a SQLite-backed project repository.
func NewSQLiteProjectRepository(db *sql.DB) portsrepo.ProjectRepository {
	return &SQLiteProjectRepository{db: db}
}

var _ portsrepo.ProjectRepository = (*SQLiteProjectRepository)(nil)

func (r *SQLiteProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	document, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project %s: %w", project.ProjectID, err)
	}

	query := `INSERT INTO projects (project_id, code, country, budget_year, status, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (project_id) DO UPDATE SET
			code = excluded.code,
			country = excluded.country,
			budget_year = excluded.budget_year,
			status = excluded.status,
			document = excluded.document,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		project.ProjectID,
		project.Code,
		string(project.Country),
		project.BudgetYear,
		string(project.Status),
		string(document),
		project.CreatedAt.Format(time.RFC3339Nano),
		project.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

func (r *SQLiteProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var document string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE project_id = ?`, projectID).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	var project domain.Project
	if err := json.Unmarshal([]byte(document), &project); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", projectID, err)
	}
	return &project, nil
}

func (r *SQLiteProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT document FROM projects ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		var project domain.Project
		if err := json.Unmarshal([]byte(document), &project); err != nil {
			return nil, fmt.Errorf("failed to decode project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	return nil
}
