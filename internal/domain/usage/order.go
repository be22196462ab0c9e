package usage

import (
	"sort"
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
)

const hoursPerDay = 24.0

// chronological returns a sorted copy of records, oldest first. Records
// sharing a timestamp are ordered by meter reading, then by ID.
func chronological(records []*entity.Record) []*entity.Record {
	sorted := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r != nil {
			sorted = append(sorted, r)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		if sorted[i].MeterReading != sorted[j].MeterReading {
			return sorted[i].MeterReading < sorted[j].MeterReading
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	return sorted
}

// purchasesWithUnits keeps purchases that bought a positive number of units.
func purchasesWithUnits(records []*entity.Record) []*entity.Record {
	out := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r != nil && r.HasPurchasedUnits() {
			out = append(out, r)
		}
	}
	return out
}

// daysBetween returns the fractional number of days from a to b.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / hoursPerDay
}
