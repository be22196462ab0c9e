package analytics

import (
	"context"
	"time"

	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// GetDailyUsageInput optionally clips the daily map to a date range.
type GetDailyUsageInput struct {
	From time.Time // Optional
	To   time.Time // Optional
}

// GetDailyUsageOutput holds the daily estimates and the rates used to build them.
type GetDailyUsageOutput struct {
	Entries       []usage.DailyUsageEntry
	AvgDailyUsage float64
	AvgCostPerKwh float64
	ProjectedDays int
}

// GetDailyUsageUseCase returns the interpolated and projected daily usage.
type GetDailyUsageUseCase struct {
	source *Source
}

// NewGetDailyUsageUseCase creates a new GetDailyUsageUseCase instance.
func NewGetDailyUsageUseCase(source *Source) *GetDailyUsageUseCase {
	return &GetDailyUsageUseCase{source: source}
}

// Execute builds the daily map.
func (uc *GetDailyUsageUseCase) Execute(ctx context.Context, input GetDailyUsageInput) (*GetDailyUsageOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"to must not be before from",
			domainerror.ErrInvalidDateRange,
		)
	}

	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}

	selector := rangeSelector(input.From) + ".." + rangeSelector(input.To)
	return memoize(ctx, uc.source, uc.source.cacheKey("daily", selector, records), func() *GetDailyUsageOutput {
		daily := usage.BuildDailyMap(records, uc.source.params)
		entries := daily.Range(input.From, input.To)

		projected := 0
		for _, e := range entries {
			if e.IsProjected {
				projected++
			}
		}

		return &GetDailyUsageOutput{
			Entries:       entries,
			AvgDailyUsage: usage.AvgDailyUsage(records),
			AvgCostPerKwh: usage.BlendedRate(records),
			ProjectedDays: projected,
		}
	}), nil
}

func rangeSelector(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return valueobject.DateKeyOf(t).String()
}
