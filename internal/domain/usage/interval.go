package usage

import "github.com/volttrack/backend/internal/domain/entity"

// Interval is the span between two chronologically adjacent purchases.
type Interval struct {
	Start      *entity.Record
	End        *entity.Record
	UsageDelta float64
	DayDelta   float64
	DailyRate  float64
}

// HasElapsedTime reports whether the interval covers a positive amount of time.
func (i Interval) HasElapsedTime() bool {
	return i.DayDelta > 0
}

// ComputeIntervals pairs adjacent purchases with units > 0 and returns the
// intervals whose meter reading increased, oldest first. Spot checks are
// ignored. DailyRate is zero for intervals without elapsed time.
func ComputeIntervals(records []*entity.Record) []Interval {
	sorted := chronological(purchasesWithUnits(records))
	if len(sorted) < 2 {
		return []Interval{}
	}

	intervals := make([]Interval, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]

		usageDelta := next.MeterReading - prev.MeterReading
		if usageDelta <= 0 {
			continue
		}

		interval := Interval{
			Start:      prev,
			End:        next,
			UsageDelta: usageDelta,
			DayDelta:   daysBetween(prev.Timestamp, next.Timestamp),
		}
		if interval.DayDelta > 0 {
			interval.DailyRate = usageDelta / interval.DayDelta
		}

		intervals = append(intervals, interval)
	}

	return intervals
}
