package analytics

import (
	"context"
	"fmt"
	"time"

	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/usage"
)

// GetMonthViewInput selects the calendar month.
type GetMonthViewInput struct {
	Year  int
	Month int
}

// GetMonthViewOutput holds the month breakdown and the projection banner data.
type GetMonthViewOutput struct {
	View          usage.MonthView
	AvgDailyUsage float64
	AvgCostPerKwh float64
}

// GetMonthViewUseCase folds daily usage into month and week totals.
type GetMonthViewUseCase struct {
	source *Source
}

// NewGetMonthViewUseCase creates a new GetMonthViewUseCase instance.
func NewGetMonthViewUseCase(source *Source) *GetMonthViewUseCase {
	return &GetMonthViewUseCase{source: source}
}

// Execute builds the month view.
func (uc *GetMonthViewUseCase) Execute(ctx context.Context, input GetMonthViewInput) (*GetMonthViewOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Year < 1970 || input.Year > 9999 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 1970 and 9999",
			domainerror.ErrInvalidYear,
		)
	}

	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}

	selector := fmt.Sprintf("%04d-%02d", input.Year, input.Month)
	return memoize(ctx, uc.source, uc.source.cacheKey("month", selector, records), func() *GetMonthViewOutput {
		daily := usage.BuildDailyMap(records, uc.source.params)
		return &GetMonthViewOutput{
			View:          usage.BuildMonthView(daily, input.Year, time.Month(input.Month)),
			AvgDailyUsage: usage.AvgDailyUsage(records),
			AvgCostPerKwh: usage.BlendedRate(records),
		}
	}), nil
}
