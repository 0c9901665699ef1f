package services

import (
	"context"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

// SettingsSvcFacade exposes the process-wide configuration and catalogs.
type SettingsSvcFacade interface {
	// GetSettings returns the effective global settings snapshot.
	GetSettings(ctx context.Context) (domain.GlobalSettings, error)

	// UpdateSettings applies admin edits to the global settings. Admin only.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.User) (*domain.GlobalSettings, error)

	// GetMasterData returns the classification catalogs.
	GetMasterData(ctx context.Context) (domain.MasterData, error)

	// UpdateMasterData replaces the classification catalogs. Admin only.
	UpdateMasterData(ctx context.Context, data domain.MasterData, actor domain.User) error
}
