package analytics

import (
	"context"

	"github.com/volttrack/backend/internal/domain/usage"
)

// GetAnomaliesOutput holds every anomaly and the most recent one.
type GetAnomaliesOutput struct {
	Anomalies []usage.AnomalyInterval
	Latest    *usage.AnomalyInterval
}

// GetAnomaliesUseCase detects probable missed purchase logs.
type GetAnomaliesUseCase struct {
	source *Source
}

// NewGetAnomaliesUseCase creates a new GetAnomaliesUseCase instance.
func NewGetAnomaliesUseCase(source *Source) *GetAnomaliesUseCase {
	return &GetAnomaliesUseCase{source: source}
}

// Execute runs anomaly detection over all records.
func (uc *GetAnomaliesUseCase) Execute(ctx context.Context) (*GetAnomaliesOutput, error) {
	records, err := uc.source.records(ctx)
	if err != nil {
		return nil, err
	}

	anomalies := memoize(ctx, uc.source, uc.source.cacheKey("anomalies", "all", records), func() []usage.AnomalyInterval {
		return usage.DetectAnomalies(records, uc.source.params)
	})

	return &GetAnomaliesOutput{
		Anomalies: anomalies,
		Latest:    usage.LatestAnomaly(anomalies),
	}, nil
}
