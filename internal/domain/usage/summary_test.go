package usage

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

func TestComputeSummary(t *testing.T) {
	t.Run("empty collection returns zeros", func(t *testing.T) {
		got := ComputeSummary(nil)

		if !got.TotalSpent.IsZero() || got.TotalUnits != 0 || !got.AvgCost.IsZero() || got.LastReading != 0 || got.RecordCount != 0 {
			t.Errorf("expected all-zero summary, got %+v", got)
		}
	})

	t.Run("totals purchases and takes last reading from any kind", func(t *testing.T) {
		records := []*entity.Record{
			entity.NewSpotCheck(time.Date(2023, 11, 10, 8, 0, 0, 0, time.UTC), 10120),
			entity.NewPurchase(time.Date(2023, 10, 15, 14, 30, 0, 0, time.UTC), 10073.7,
				decimal.NewFromInt(100), decimal.NewFromInt(15), decimal.NewFromInt(2), 48.2),
			entity.NewPurchase(time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC), 10025.5,
				decimal.NewFromInt(50), decimal.RequireFromString("7.5"), decimal.Zero, 25.5),
			entity.NewPurchase(time.Date(2023, 11, 1, 9, 15, 0, 0, time.UTC), 10097.8,
				decimal.NewFromInt(50), decimal.RequireFromString("7.5"), decimal.Zero, 24.1),
		}

		got := ComputeSummary(records)

		if !got.TotalSpent.Equal(decimal.NewFromInt(232)) {
			t.Errorf("TotalSpent = %s, want 232", got.TotalSpent)
		}
		if math.Abs(got.TotalUnits-97.8) > 1e-9 {
			t.Errorf("TotalUnits = %v, want 97.8", got.TotalUnits)
		}
		if math.Abs(got.AvgCost.InexactFloat64()-232/97.8) > 1e-6 {
			t.Errorf("AvgCost = %s, want %v", got.AvgCost, 232/97.8)
		}
		if got.LastReading != 10120 {
			t.Errorf("LastReading = %v, want 10120", got.LastReading)
		}
		if got.RecordCount != 4 {
			t.Errorf("RecordCount = %d, want 4", got.RecordCount)
		}
	})

	t.Run("spot checks only", func(t *testing.T) {
		got := ComputeSummary([]*entity.Record{spotCheckAt(day(0), 50), spotCheckAt(day(1), 60)})

		if !got.TotalSpent.IsZero() || !got.AvgCost.IsZero() {
			t.Errorf("expected zero spend, got %+v", got)
		}
		if got.LastReading != 60 {
			t.Errorf("LastReading = %v, want 60", got.LastReading)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		records := purchasesOnDays(100, 150, 175)

		a := ComputeSummary(records)
		b := ComputeSummary(reversed(records))

		if !a.TotalSpent.Equal(b.TotalSpent) || a.TotalUnits != b.TotalUnits || a.LastReading != b.LastReading {
			t.Errorf("summaries differ: %+v vs %+v", a, b)
		}
	})
}
