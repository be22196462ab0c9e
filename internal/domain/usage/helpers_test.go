package usage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

var baseTime = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseTime.AddDate(0, 0, n)
}

func purchaseAt(ts time.Time, reading float64) *entity.Record {
	return entity.NewPurchase(ts, reading, decimal.NewFromInt(50), decimal.Zero, decimal.Zero, 10)
}

func spotCheckAt(ts time.Time, reading float64) *entity.Record {
	return entity.NewSpotCheck(ts, reading)
}

func purchasesOnDays(readings ...float64) []*entity.Record {
	records := make([]*entity.Record, len(readings))
	for i, reading := range readings {
		records[i] = purchaseAt(day(i), reading)
	}
	return records
}

func reversed(records []*entity.Record) []*entity.Record {
	out := make([]*entity.Record, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
