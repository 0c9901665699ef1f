// Command capex_backend wires the capital-budgeting core for a host
// process: configuration, storage backend, migrations, demo seed and the
// service container. The workflow surface itself is the embedded service
// API; there is no wire protocol of its own.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	"github.com/capexhub/capex_planning_app/internal/core/services"
	"github.com/capexhub/capex_planning_app/internal/platform/config"
	"github.com/capexhub/capex_planning_app/internal/repositories/database/pgsql"
	"github.com/capexhub/capex_planning_app/internal/repositories/database/sqlite"
	"github.com/capexhub/capex_planning_app/internal/repositories/memory"
	"github.com/capexhub/capex_planning_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	projectRepo, cleanup, err := newProjectRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize project store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	repos := &portsrepo.RepositoryProvider{
		ProjectRepo:  projectRepo,
		UserRepo:     memory.NewUserRepository(memory.SeedUsers()...),
		SettingsRepo: memory.NewSettingsRepository(cfg.GlobalSettings()),
	}

	if cfg.SeedDemoData {
		if err := seedIfEmpty(ctx, projectRepo, cfg.ActiveBudgetYear, logger); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	container := services.NewContainer(repos, services.WithLogger(logger))

	projects, err := container.Project.ListProjects(ctx)
	if err != nil {
		logger.Error("Failed to load project working set", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Capital budgeting core ready",
		slog.String("backend", cfg.StorageBackend),
		slog.Int("projects", len(projects)),
		slog.Int("active_budget_year", cfg.ActiveBudgetYear),
	)
}

// newProjectRepository selects and initializes the configured project store.
func newProjectRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.ProjectRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, err
		}
		return pgsql.NewPgxProjectRepository(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.BackendSQLite:
		db, err := sqlite.OpenDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSQLiteProjectRepository(db), func() { _ = db.Close() }, nil

	default:
		return memory.NewProjectRepository(), func() {}, nil
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection, compatible with the main pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedIfEmpty loads the demo projects into an empty store so a fresh
// deployment starts with something to review.
func seedIfEmpty(ctx context.Context, repo portsrepo.ProjectRepository, budgetYear int, logger *slog.Logger) error {
	existing, err := repo.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range memory.SeedProjects(budgetYear, time.Now()) {
		if err := repo.SaveProject(ctx, p); err != nil {
			return err
		}
	}
	logger.Info("Seeded demo projects into empty store")
	return nil
}
