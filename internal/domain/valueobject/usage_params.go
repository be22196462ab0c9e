// Package valueobject contains domain value objects for the VoltTrack system.
package valueobject

// UsageParams tunes the usage engine.
type UsageParams struct {
	// Interval usage above average * AnomalyMultiplier is flagged.
	AnomalyMultiplier float64

	// Days projected past the last known record.
	ProjectionHorizonDays int

	// Minimum qualifying purchases before anomalies are considered.
	MinAnomalyPurchases int

	// Minimum valid intervals needed to form a baseline average.
	MinBaselineIntervals int
}

// DefaultUsageParams returns the default engine configuration.
func DefaultUsageParams() UsageParams {
	return UsageParams{
		AnomalyMultiplier:     1.8,
		ProjectionHorizonDays: 90,
		MinAnomalyPurchases:   3,
		MinBaselineIntervals:  2,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (p UsageParams) Normalize() UsageParams {
	d := DefaultUsageParams()
	if p.AnomalyMultiplier <= 0 {
		p.AnomalyMultiplier = d.AnomalyMultiplier
	}
	if p.ProjectionHorizonDays <= 0 {
		p.ProjectionHorizonDays = d.ProjectionHorizonDays
	}
	if p.MinAnomalyPurchases <= 0 {
		p.MinAnomalyPurchases = d.MinAnomalyPurchases
	}
	if p.MinBaselineIntervals <= 0 {
		p.MinBaselineIntervals = d.MinBaselineIntervals
	}
	return p
}

// Threshold returns the usage level above which an interval is anomalous.
func (p UsageParams) Threshold(average float64) float64 {
	return average * p.AnomalyMultiplier
}

// IsAnomalous reports whether usage exceeds the threshold for the given average.
func (p UsageParams) IsAnomalous(usage, average float64) bool {
	return usage > p.Threshold(average)
}
