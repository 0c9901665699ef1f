package repositories

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
)

// SettingsRepository supplies the process-wide configuration the core
// consumes: global settings and master-data catalogs. Read-mostly.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.GlobalSettings, error)
	SaveSettings(ctx context.Context, settings domain.GlobalSettings) error

	GetMasterData(ctx context.Context) (domain.MasterData, error)
	SaveMasterData(ctx context.Context, data domain.MasterData) error
}
