package usage

import (
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// ReadingWarning describes a new meter reading that implies unusually high
// usage since the last logged record.
type ReadingWarning struct {
	CurrentUsage float64
	AverageUsage float64
	Threshold    float64
	LastDate     time.Time
}

// CheckReading compares the usage implied by a prospective meter reading with
// the average usage between purchases. It returns nil when the reading is not
// suspicious or there is not enough history to judge.
func CheckReading(records []*entity.Record, meterReading float64, params valueobject.UsageParams) *ReadingWarning {
	params = params.Normalize()

	sorted := chronological(records)
	if len(sorted) == 0 {
		return nil
	}

	last := sorted[len(sorted)-1]
	current := meterReading - last.MeterReading
	if current <= 0 {
		return nil
	}

	purchases := purchasesWithUnits(sorted)
	var total float64
	count := 0
	for i := 1; i < len(purchases); i++ {
		diff := purchases[i].MeterReading - purchases[i-1].MeterReading
		if diff > 0 {
			total += diff
			count++
		}
	}

	if count < params.MinBaselineIntervals {
		return nil
	}

	average := total / float64(count)
	if !params.IsAnomalous(current, average) {
		return nil
	}

	return &ReadingWarning{
		CurrentUsage: current,
		AverageUsage: average,
		Threshold:    params.Threshold(average),
		LastDate:     last.Timestamp,
	}
}
