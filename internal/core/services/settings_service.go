package services

import (
	"context"
	"fmt"
	"time"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portsrepo "github.com/capexhub/capex_planning_app/internal/core/ports/repositories"
	portssvc "github.com/capexhub/capex_planning_app/internal/core/ports/services"
	"github.com/capexhub/capex_planning_app/internal/dto"
)

type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates the global settings / master data service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.GlobalSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.GlobalSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.User) (*domain.GlobalSettings, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.ActiveBudgetYear != nil {
		settings.ActiveBudgetYear = *req.ActiveBudgetYear
	}
	if req.IsReadOnly != nil {
		settings.IsReadOnly = *req.IsReadOnly
	}
	if req.SystemMessage != nil {
		settings.SystemMessage = *req.SystemMessage
	}
	if req.LockDates != nil {
		for country, raw := range req.LockDates {
			if raw == "" {
				continue
			}
			if _, err := time.Parse("2006-01-02", raw); err != nil {
				return nil, fmt.Errorf("lock date %q for %s: %w", raw, country, apperrors.ErrValidation)
			}
		}
		settings.LockDates = req.LockDates
	}
	if req.HQApprovalLimit != nil {
		if req.HQApprovalLimit.IsNegative() {
			return nil, fmt.Errorf("HQ approval limit must not be negative: %w", apperrors.ErrValidation)
		}
		settings.Thresholds.HQApprovalLimit = *req.HQApprovalLimit
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}

func (s *settingsService) GetMasterData(ctx context.Context) (domain.MasterData, error) {
	data, err := s.settingsRepo.GetMasterData(ctx)
	if err != nil {
		return domain.MasterData{}, fmt.Errorf("failed to load master data: %w", err)
	}
	return data, nil
}

func (s *settingsService) UpdateMasterData(ctx context.Context, data domain.MasterData, actor domain.User) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.settingsRepo.SaveMasterData(ctx, data); err != nil {
		return fmt.Errorf("failed to save master data: %w", err)
	}
	return nil
}
