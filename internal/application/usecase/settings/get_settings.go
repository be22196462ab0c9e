// Package settings contains user preference use cases.
package settings

import (
	"context"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// GetSettingsUseCase returns the stored settings or the defaults.
type GetSettingsUseCase struct {
	settingsRepo    adapter.SettingsRepository
	defaultCurrency string
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository, defaultCurrency string) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo:    settingsRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Execute loads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*entity.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsPersistence,
			"failed to load settings",
			err,
		)
	}
	if settings == nil || settings.Currency == "" {
		return &entity.Settings{Currency: uc.defaultCurrency}, nil
	}
	return settings, nil
}
