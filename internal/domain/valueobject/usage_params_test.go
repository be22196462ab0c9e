package valueobject

import (
	"testing"
	"time"
)

func TestUsageParams_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input UsageParams
		want  UsageParams
	}{
		{
			name:  "zero value falls back to defaults",
			input: UsageParams{},
			want:  DefaultUsageParams(),
		},
		{
			name:  "custom values are kept",
			input: UsageParams{AnomalyMultiplier: 2.5, ProjectionHorizonDays: 30, MinAnomalyPurchases: 4, MinBaselineIntervals: 3},
			want:  UsageParams{AnomalyMultiplier: 2.5, ProjectionHorizonDays: 30, MinAnomalyPurchases: 4, MinBaselineIntervals: 3},
		},
		{
			name:  "negative values are replaced",
			input: UsageParams{AnomalyMultiplier: -1, ProjectionHorizonDays: -10, MinAnomalyPurchases: 5, MinBaselineIntervals: -2},
			want:  UsageParams{AnomalyMultiplier: 1.8, ProjectionHorizonDays: 90, MinAnomalyPurchases: 5, MinBaselineIntervals: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUsageParams_IsAnomalous(t *testing.T) {
	p := DefaultUsageParams()

	if p.IsAnomalous(18, 10) {
		t.Error("usage equal to threshold must not be anomalous")
	}
	if !p.IsAnomalous(18.01, 10) {
		t.Error("usage above threshold must be anomalous")
	}
}

func TestDateKeyOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, time.March, 1, 1, 30, 0, 0, loc)

	if got := DateKeyOf(ts); got != "2024-02-29" {
		t.Errorf("DateKeyOf() = %s, want 2024-02-29", got)
	}

	parsed, err := DateKeyFor(2024, time.March, 5).Time()
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	if !parsed.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v", parsed)
	}
}
