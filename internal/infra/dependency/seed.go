package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
)

// SamplePurchases returns the three demo purchases shown on a fresh install.
func SamplePurchases() []*entity.Record {
	return []*entity.Record{
		entity.NewPurchase(
			time.Date(2023, time.October, 1, 10, 0, 0, 0, time.UTC), 10025.5,
			decimal.NewFromInt(50), decimal.RequireFromString("7.50"), decimal.Zero, 25.5,
		),
		entity.NewPurchase(
			time.Date(2023, time.October, 15, 14, 30, 0, 0, time.UTC), 10073.7,
			decimal.NewFromInt(100), decimal.NewFromInt(15), decimal.NewFromInt(2), 48.2,
		),
		entity.NewPurchase(
			time.Date(2023, time.November, 1, 9, 15, 0, 0, time.UTC), 10097.8,
			decimal.NewFromInt(50), decimal.RequireFromString("7.50"), decimal.Zero, 24.1,
		),
	}
}

// SeedSampleData stores the sample purchases when the store is empty.
// It returns the number of records created.
func SeedSampleData(ctx context.Context, repo adapter.RecordRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	samples := SamplePurchases()
	for _, r := range samples {
		if err := repo.Create(ctx, r); err != nil {
			return 0, err
		}
	}

	slog.Info("Seeded sample purchases", "count", len(samples))
	return len(samples), nil
}
