package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// Storage backend selectors.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	StorageBackend string // memory | sqlite | postgres
	DatabaseURL    string // postgres backend
	SQLitePath     string // sqlite backend
	IsProduction   bool
	SeedDemoData   bool

	// GlobalSettings bootstrap. The admin can change these at runtime
	// through the settings service; env values only seed the first load.
	ActiveBudgetYear int
	ReadOnly         bool
	SystemMessage    string
	HQApprovalLimit  decimal.Decimal
	LockDates        map[domain.Country]string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("STORAGE_BACKEND", BackendMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "capex.db")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.SetDefault("ACTIVE_BUDGET_YEAR", time.Now().Year()+1)
	viper.SetDefault("READ_ONLY", false)
	viper.SetDefault("SYSTEM_MESSAGE", "")
	viper.SetDefault("HQ_APPROVAL_LIMIT", "0")
	viper.SetDefault("LOCK_DATES", "")

	viper.AutomaticEnv()

	cfg := &Config{
		StorageBackend:   strings.ToLower(viper.GetString("STORAGE_BACKEND")),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		SeedDemoData:     viper.GetBool("SEED_DEMO_DATA"),
		ActiveBudgetYear: viper.GetInt("ACTIVE_BUDGET_YEAR"),
		ReadOnly:         viper.GetBool("READ_ONLY"),
		SystemMessage:    viper.GetString("SYSTEM_MESSAGE"),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL must be set for the postgres backend")
	}

	limitStr := viper.GetString("HQ_APPROVAL_LIMIT")
	limit, err := decimal.NewFromString(limitStr)
	if err != nil {
		limit = decimal.Zero
		log.Printf("Warning: Invalid value for HQ_APPROVAL_LIMIT (%q). Threshold short-circuit disabled.\n", limitStr)
	}
	cfg.HQApprovalLimit = limit

	cfg.LockDates, err = parseLockDates(viper.GetString("LOCK_DATES"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// GlobalSettings materializes the bootstrap settings snapshot.
func (c *Config) GlobalSettings() domain.GlobalSettings {
	return domain.GlobalSettings{
		ActiveBudgetYear: c.ActiveBudgetYear,
		IsReadOnly:       c.ReadOnly,
		SystemMessage:    c.SystemMessage,
		LockDates:        c.LockDates,
		Thresholds:       domain.Thresholds{HQApprovalLimit: c.HQApprovalLimit},
	}
}

// parseLockDates parses "BR=2025-11-30,GQ=2025-12-15" into the per-country
// lock date map.
func parseLockDates(raw string) (map[domain.Country]string, error) {
	dates := make(map[domain.Country]string)
	if strings.TrimSpace(raw) == "" {
		return dates, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid LOCK_DATES entry %q", pair)
		}
		if _, err := time.Parse("2006-01-02", parts[1]); err != nil {
			return nil, fmt.Errorf("invalid LOCK_DATES date %q for %s", parts[1], parts[0])
		}
		dates[domain.Country(parts[0])] = parts[1]
	}
	return dates, nil
}
