package usage

import (
	"testing"
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func TestDetectAnomalies(t *testing.T) {
	params := valueobject.DefaultUsageParams()

	tests := []struct {
		name      string
		records   []*entity.Record
		wantUsage []float64
		wantAvg   float64
	}{
		{
			name:      "fewer than three purchases",
			records:   purchasesOnDays(100, 500),
			wantUsage: []float64{},
		},
		{
			name:      "three purchases with regressive readings",
			records:   purchasesOnDays(100, 90, 80),
			wantUsage: []float64{},
		},
		{
			name:      "only one valid interval",
			records:   purchasesOnDays(100, 90, 150),
			wantUsage: []float64{},
		},
		{
			name:      "three purchases flag the interval above 1.8x average",
			records:   purchasesOnDays(100, 150, 155),
			wantUsage: []float64{50},
			wantAvg:   27.5,
		},
		{
			name:      "fourth purchase raises the average so nothing is flagged",
			records:   purchasesOnDays(100, 150, 155, 210),
			wantUsage: []float64{},
		},
		{
			name:      "single large gap is flagged",
			records:   purchasesOnDays(100, 110, 120, 130, 200),
			wantUsage: []float64{70},
			wantAvg:   25,
		},
		{
			name: "spot checks do not affect detection",
			records: append(purchasesOnDays(100, 110, 120, 130, 200),
				spotCheckAt(day(3).Add(time.Hour), 160)),
			wantUsage: []float64{70},
			wantAvg:   25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAnomalies(tt.records, params)

			if len(got) != len(tt.wantUsage) {
				t.Fatalf("expected %d anomalies, got %d: %+v", len(tt.wantUsage), len(got), got)
			}
			for i, a := range got {
				if a.Usage != tt.wantUsage[i] {
					t.Errorf("anomaly %d usage = %v, want %v", i, a.Usage, tt.wantUsage[i])
				}
				if !almostEqual(a.Average, tt.wantAvg) {
					t.Errorf("anomaly %d average = %v, want %v", i, a.Average, tt.wantAvg)
				}
				if !almostEqual(a.Threshold, tt.wantAvg*1.8) {
					t.Errorf("anomaly %d threshold = %v, want %v", i, a.Threshold, tt.wantAvg*1.8)
				}
			}
		})
	}
}

func TestDetectAnomalies_ThresholdUsesRecomputedAverage(t *testing.T) {
	params := valueobject.DefaultUsageParams()
	records := purchasesOnDays(100, 150, 155, 210)

	intervals := ComputeIntervals(records)
	if len(intervals) != 3 {
		t.Fatalf("expected 3 intervals, got %d", len(intervals))
	}

	var sum float64
	for _, interval := range intervals {
		sum += interval.UsageDelta
	}
	average := sum / 3
	if !almostEqual(params.Threshold(average), 66) {
		t.Errorf("threshold = %v, want 66", params.Threshold(average))
	}
	for _, interval := range intervals {
		if params.IsAnomalous(interval.UsageDelta, average) {
			t.Errorf("interval with usage %v should not be anomalous", interval.UsageDelta)
		}
	}
}

func TestDetectAnomalies_CustomMultiplier(t *testing.T) {
	records := purchasesOnDays(100, 150, 155)

	got := DetectAnomalies(records, valueobject.UsageParams{AnomalyMultiplier: 2})

	if len(got) != 0 {
		t.Errorf("expected no anomalies with multiplier 2, got %+v", got)
	}
}

func TestDetectAnomalies_OrderIndependent(t *testing.T) {
	params := valueobject.DefaultUsageParams()
	records := purchasesOnDays(100, 110, 120, 130, 200, 260, 270)

	forward := DetectAnomalies(records, params)
	backward := DetectAnomalies(reversed(records), params)

	if len(forward) != len(backward) {
		t.Fatalf("lengths differ: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[i] {
			t.Errorf("anomaly %d differs: %+v vs %+v", i, forward[i], backward[i])
		}
	}
}

func TestLatestAnomaly(t *testing.T) {
	if LatestAnomaly(nil) != nil {
		t.Error("expected nil for no anomalies")
	}

	records := purchasesOnDays(100, 110, 200, 210, 220, 310)
	anomalies := DetectAnomalies(records, valueobject.DefaultUsageParams())
	if len(anomalies) != 2 {
		t.Fatalf("expected 2 anomalies, got %d", len(anomalies))
	}

	latest := LatestAnomaly(anomalies)
	if latest == nil || !latest.End.Equal(day(5)) {
		t.Errorf("latest anomaly = %+v, want one ending on day 5", latest)
	}
	if latest.Key() != records[4].ID.String()+":"+records[5].ID.String() {
		t.Errorf("unexpected key %s", latest.Key())
	}
}
