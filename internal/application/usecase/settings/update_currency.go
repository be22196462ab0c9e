package settings

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// UpdateCurrencyInput carries the new currency symbol.
type UpdateCurrencyInput struct {
	Currency string
}

// UpdateCurrencyUseCase changes the display currency.
type UpdateCurrencyUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateCurrencyUseCase creates a new UpdateCurrencyUseCase instance.
func NewUpdateCurrencyUseCase(settingsRepo adapter.SettingsRepository) *UpdateCurrencyUseCase {
	return &UpdateCurrencyUseCase{settingsRepo: settingsRepo}
}

// Execute validates and stores the symbol.
func (uc *UpdateCurrencyUseCase) Execute(ctx context.Context, input UpdateCurrencyInput) (*entity.Settings, error) {
	currency := strings.TrimSpace(input.Currency)
	n := utf8.RuneCountInString(currency)
	if n == 0 || n > entity.MaxCurrencyLength {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidCurrency,
			"currency symbol must be 1 to 3 characters",
			domainerror.ErrInvalidCurrency,
		)
	}

	settings := entity.NewSettings(currency)
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		slog.Error("Failed to save settings", "error", err)
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSettingsPersistence,
			"failed to save settings",
			err,
		)
	}

	slog.Info("Currency updated", "currency", currency)
	return settings, nil
}
