package usage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

func TestComputeIntervals(t *testing.T) {
	t.Run("sorts input and skips regressions and spot checks", func(t *testing.T) {
		records := []*entity.Record{
			purchaseAt(day(3), 160),
			spotCheckAt(day(2), 500),
			purchaseAt(day(0), 100),
			purchaseAt(day(1), 90),
		}

		intervals := ComputeIntervals(records)

		if len(intervals) != 1 {
			t.Fatalf("expected 1 interval, got %d", len(intervals))
		}
		got := intervals[0]
		if got.UsageDelta != 70 {
			t.Errorf("UsageDelta = %v, want 70", got.UsageDelta)
		}
		if got.DayDelta != 2 {
			t.Errorf("DayDelta = %v, want 2", got.DayDelta)
		}
		if got.DailyRate != 35 {
			t.Errorf("DailyRate = %v, want 35", got.DailyRate)
		}
		if !got.Start.Timestamp.Equal(day(1)) || !got.End.Timestamp.Equal(day(3)) {
			t.Errorf("interval spans %v..%v, want day1..day3", got.Start.Timestamp, got.End.Timestamp)
		}
	})

	t.Run("keeps fractional day deltas", func(t *testing.T) {
		records := []*entity.Record{
			purchaseAt(baseTime, 100),
			purchaseAt(baseTime.Add(12*time.Hour), 105),
		}

		intervals := ComputeIntervals(records)

		if len(intervals) != 1 {
			t.Fatalf("expected 1 interval, got %d", len(intervals))
		}
		if intervals[0].DayDelta != 0.5 {
			t.Errorf("DayDelta = %v, want 0.5", intervals[0].DayDelta)
		}
		if intervals[0].DailyRate != 10 {
			t.Errorf("DailyRate = %v, want 10", intervals[0].DailyRate)
		}
	})

	t.Run("ignores purchases without units", func(t *testing.T) {
		zeroUnits := entity.NewPurchase(day(1), 150, decimal.NewFromInt(10), decimal.Zero, decimal.Zero, 0)
		records := []*entity.Record{purchaseAt(day(0), 100), zeroUnits, purchaseAt(day(2), 120)}

		intervals := ComputeIntervals(records)

		if len(intervals) != 1 || intervals[0].UsageDelta != 20 {
			t.Fatalf("expected a single 20 kWh interval, got %+v", intervals)
		}
	})

	t.Run("same timestamp yields zero rate", func(t *testing.T) {
		records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(0), 110)}

		intervals := ComputeIntervals(records)

		if len(intervals) != 1 {
			t.Fatalf("expected 1 interval, got %d", len(intervals))
		}
		if intervals[0].HasElapsedTime() || intervals[0].DailyRate != 0 {
			t.Errorf("expected no elapsed time and zero rate, got %+v", intervals[0])
		}
	})

	t.Run("timestamp ties order by reading regardless of id", func(t *testing.T) {
		low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		high := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

		for _, ids := range [][2]uuid.UUID{{low, high}, {high, low}} {
			first := purchaseAt(day(0), 100)
			first.ID = ids[0]
			second := purchaseAt(day(0), 110)
			second.ID = ids[1]

			intervals := ComputeIntervals([]*entity.Record{second, purchaseAt(day(1), 130), first})

			if len(intervals) != 2 {
				t.Fatalf("ids %v: expected 2 intervals, got %d", ids, len(intervals))
			}
			if intervals[0].UsageDelta != 10 || intervals[0].HasElapsedTime() {
				t.Errorf("ids %v: first interval = %+v, want 10 kWh with no elapsed time", ids, intervals[0])
			}
			if intervals[1].UsageDelta != 20 || intervals[1].DayDelta != 1 {
				t.Errorf("ids %v: last interval = %+v, want 20 kWh over 1 day", ids, intervals[1])
			}
		}
	})

	t.Run("insufficient records", func(t *testing.T) {
		if got := ComputeIntervals(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
		if got := ComputeIntervals(purchasesOnDays(100)); len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})

	t.Run("output is ascending with positive usage", func(t *testing.T) {
		records := reversed(purchasesOnDays(100, 120, 115, 140, 140, 190))

		intervals := ComputeIntervals(records)

		for i, interval := range intervals {
			if interval.UsageDelta <= 0 {
				t.Errorf("interval %d has non-positive usage %v", i, interval.UsageDelta)
			}
			if i > 0 && interval.Start.Timestamp.Before(intervals[i-1].Start.Timestamp) {
				t.Errorf("interval %d starts before interval %d", i, i-1)
			}
		}
		if len(intervals) != 3 {
			t.Errorf("expected 3 intervals, got %d", len(intervals))
		}
	})
}
