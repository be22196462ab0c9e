package analytics

import (
	"context"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/usage"
)

// GetSummaryOutput holds whole-history totals and the display currency.
type GetSummaryOutput struct {
	Summary  usage.Summary
	Currency string
}

// GetSummaryUseCase computes whole-history totals.
type GetSummaryUseCase struct {
	source          *Source
	settingsRepo    adapter.SettingsRepository
	defaultCurrency string
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(source *Source, settingsRepo adapter.SettingsRepository, defaultCurrency string) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		source:          source,
		settingsRepo:    settingsRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}

	summary := memoize(ctx, uc.source, uc.source.cacheKey("summary", "all", records), func() usage.Summary {
		return usage.ComputeSummary(records)
	})

	return &GetSummaryOutput{
		Summary:  summary,
		Currency: uc.currency(ctx),
	}, nil
}

func (uc *GetSummaryUseCase) currency(ctx context.Context) string {
	if uc.settingsRepo == nil {
		return uc.defaultCurrency
	}
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		slog.Warn("Failed to load settings, using default currency", "error", err)
		return uc.defaultCurrency
	}
	if settings == nil || settings.Currency == "" {
		return uc.defaultCurrency
	}
	return settings.Currency
}
