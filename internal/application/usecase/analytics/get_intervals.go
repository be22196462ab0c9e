package analytics

import (
	"context"

	"github.com/volttrack/backend/internal/domain/usage"
)

// GetIntervalsOutput holds the purchase intervals, oldest first.
type GetIntervalsOutput struct {
	Intervals []usage.Interval
}

// GetIntervalsUseCase lists usage between consecutive purchases.
type GetIntervalsUseCase struct {
	source *Source
}

// NewGetIntervalsUseCase creates a new GetIntervalsUseCase instance.
func NewGetIntervalsUseCase(source *Source) *GetIntervalsUseCase {
	return &GetIntervalsUseCase{source: source}
}

// Execute computes the intervals.
func (uc *GetIntervalsUseCase) Execute(ctx context.Context) (*GetIntervalsOutput, error) {
	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}

	return &GetIntervalsOutput{Intervals: usage.ComputeIntervals(records)}, nil
}
