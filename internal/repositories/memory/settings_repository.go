package memory

import (
	"context"
	"sync"

	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
)

// SettingsRepository keeps global settings and master data in memory.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.GlobalSettings
	master   domain.MasterData
}

// NewSettingsRepository creates a settings store with the given bootstrap
// settings and the default master-data catalogs.
func NewSettingsRepository(settings domain.GlobalSettings) *SettingsRepository {
	return &SettingsRepository{
		settings: settings,
		master:   domain.DefaultMasterData(),
	}
}

var _ portsrepo.SettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.GlobalSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.GlobalSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}

func (r *SettingsRepository) GetMasterData(ctx context.Context) (domain.MasterData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.master, nil
}

func (r *SettingsRepository) SaveMasterData(ctx context.Context, data domain.MasterData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.master = data
	return nil
}
