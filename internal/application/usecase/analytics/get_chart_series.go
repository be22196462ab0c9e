package analytics

import (
	"context"

	"github.com/volttrack/backend/internal/domain/usage"
)

// GetChartSeriesOutput holds the purchase series for charts.
type GetChartSeriesOutput struct {
	Points []usage.ChartPoint
}

// GetChartSeriesUseCase returns purchases plotted over time.
type GetChartSeriesUseCase struct {
	source *Source
}

// NewGetChartSeriesUseCase creates a new GetChartSeriesUseCase instance.
func NewGetChartSeriesUseCase(source *Source) *GetChartSeriesUseCase {
	return &GetChartSeriesUseCase{source: source}
}

// Execute builds the series.
func (uc *GetChartSeriesUseCase) Execute(ctx context.Context) (*GetChartSeriesOutput, error) {
	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}
	return &GetChartSeriesOutput{Points: usage.BuildChartSeries(records)}, nil
}
