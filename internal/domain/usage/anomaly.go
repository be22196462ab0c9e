package usage

import (
	"time"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// AnomalyInterval is an interval whose usage is far above the baseline,
// which usually means a purchase was not logged.
type AnomalyInterval struct {
	StartID   uuid.UUID
	EndID     uuid.UUID
	Start     time.Time
	End       time.Time
	Usage     float64
	DayDelta  float64
	Average   float64
	Threshold float64
}

// Key identifies the anomaly by the records that bound it.
func (a AnomalyInterval) Key() string {
	return a.StartID.String() + ":" + a.EndID.String()
}

// DetectAnomalies returns every purchase interval whose usage exceeds the
// baseline average times the configured multiplier, oldest first. It returns
// an empty slice when there is not enough history to form a baseline.
func DetectAnomalies(records []*entity.Record, params valueobject.UsageParams) []AnomalyInterval {
	params = params.Normalize()

	if len(purchasesWithUnits(records)) < params.MinAnomalyPurchases {
		return []AnomalyInterval{}
	}

	valid := make([]Interval, 0)
	var sum float64
	for _, interval := range ComputeIntervals(records) {
		if !interval.HasElapsedTime() {
			continue
		}
		valid = append(valid, interval)
		sum += interval.UsageDelta
	}

	if len(valid) < params.MinBaselineIntervals {
		return []AnomalyInterval{}
	}

	average := sum / float64(len(valid))
	threshold := params.Threshold(average)

	anomalies := make([]AnomalyInterval, 0)
	for _, interval := range valid {
		if !params.IsAnomalous(interval.UsageDelta, average) {
			continue
		}
		anomalies = append(anomalies, AnomalyInterval{
			StartID:   interval.Start.ID,
			EndID:     interval.End.ID,
			Start:     interval.Start.Timestamp,
			End:       interval.End.Timestamp,
			Usage:     interval.UsageDelta,
			DayDelta:  interval.DayDelta,
			Average:   average,
			Threshold: threshold,
		})
	}

	return anomalies
}

// LatestAnomaly returns the most recent anomaly, or nil when there is none.
func LatestAnomaly(anomalies []AnomalyInterval) *AnomalyInterval {
	if len(anomalies) == 0 {
		return nil
	}
	latest := anomalies[len(anomalies)-1]
	return &latest
}
