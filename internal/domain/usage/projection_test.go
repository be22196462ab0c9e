package usage

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func TestBuildDailyMap_InterpolationAndProjection(t *testing.T) {
	records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(10), 200)}

	daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

	if len(daily) != 100 {
		t.Fatalf("expected 100 populated days, got %d", len(daily))
	}

	for i := 0; i < 10; i++ {
		entry, ok := daily[valueobject.DateKeyOf(day(i))]
		if !ok {
			t.Fatalf("day %d missing", i)
		}
		if entry.Usage != 10 || entry.IsProjected {
			t.Errorf("day %d = %+v, want usage 10 and real", i, entry)
		}
		if entry.Cost != 50 {
			t.Errorf("day %d cost = %v, want 50", i, entry.Cost)
		}
	}

	if _, ok := daily[valueobject.DateKeyOf(day(10))]; ok {
		t.Error("the day of the last record is neither interpolated nor projected")
	}

	for i := 11; i <= 100; i++ {
		entry, ok := daily[valueobject.DateKeyOf(day(i))]
		if !ok {
			t.Fatalf("projected day %d missing", i)
		}
		if entry.Usage != 10 || !entry.IsProjected {
			t.Errorf("day %d = %+v, want projected usage 10", i, entry)
		}
	}

	if _, ok := daily[valueobject.DateKeyOf(day(101))]; ok {
		t.Error("projection must stop after the horizon")
	}
	if daily.ProjectedDays() != 90 {
		t.Errorf("ProjectedDays() = %d, want 90", daily.ProjectedDays())
	}
}

func TestBuildDailyMap_SpotChecksRefineInterpolation(t *testing.T) {
	records := []*entity.Record{
		purchaseAt(day(0), 100),
		spotCheckAt(day(2), 130),
		purchaseAt(day(10), 200),
	}

	daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

	if got := daily[valueobject.DateKeyOf(day(1))].Usage; got != 15 {
		t.Errorf("day 1 usage = %v, want 15", got)
	}
	if got := daily[valueobject.DateKeyOf(day(5))].Usage; got != 8.75 {
		t.Errorf("day 5 usage = %v, want 8.75", got)
	}
}

func TestBuildDailyMap_FlatAndRegressiveIntervals(t *testing.T) {
	t.Run("flat readings interpolate zero usage", func(t *testing.T) {
		records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(2), 100), purchaseAt(day(4), 120)}

		daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

		for i, want := range []float64{0, 0, 10, 10} {
			entry, ok := daily[valueobject.DateKeyOf(day(i))]
			if !ok || entry.IsProjected || entry.Usage != want {
				t.Errorf("day %d = %+v (present %v), want real usage %v", i, entry, ok, want)
			}
		}
		if got := daily[valueobject.DateKeyOf(day(5))]; !got.IsProjected || got.Usage != 5 {
			t.Errorf("day 5 = %+v, want projected usage 5", got)
		}
	})

	t.Run("decreasing reading is skipped and blocks projection", func(t *testing.T) {
		records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(2), 90)}

		daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

		if len(daily) != 0 {
			t.Errorf("expected empty map, got %d entries", len(daily))
		}
	})

	t.Run("single record", func(t *testing.T) {
		daily := BuildDailyMap(purchasesOnDays(100), valueobject.DefaultUsageParams())

		if len(daily) != 0 {
			t.Errorf("expected empty map, got %d entries", len(daily))
		}
	})
}

func TestBuildDailyMap_FirstRealValueWins(t *testing.T) {
	records := []*entity.Record{
		purchaseAt(baseTime, 100),
		purchaseAt(baseTime.Add(12*time.Hour), 110),
		purchaseAt(day(2), 130),
	}

	daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

	if got := daily[valueobject.DateKeyOf(day(0))].Usage; got != 20 {
		t.Errorf("day 0 usage = %v, want 20", got)
	}
	if got := daily[valueobject.DateKeyOf(day(1))].Usage; !almostEqual(got, 20.0/1.5) {
		t.Errorf("day 1 usage = %v, want %v", got, 20.0/1.5)
	}
}

func TestBuildDailyMap_CustomHorizon(t *testing.T) {
	records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(10), 200)}

	daily := BuildDailyMap(records, valueobject.UsageParams{ProjectionHorizonDays: 30})

	if daily.ProjectedDays() != 30 {
		t.Errorf("ProjectedDays() = %d, want 30", daily.ProjectedDays())
	}
}

func TestBuildDailyMap_Deterministic(t *testing.T) {
	records := []*entity.Record{
		purchaseAt(day(0), 100),
		spotCheckAt(day(3), 140),
		purchaseAt(day(7), 180),
		purchaseAt(day(7), 185),
		purchaseAt(day(12), 260),
	}
	params := valueobject.DefaultUsageParams()

	first := BuildDailyMap(records, params)
	second := BuildDailyMap(reversed(records), params)

	if !reflect.DeepEqual(first, second) {
		t.Error("daily map depends on input order")
	}
}

func TestDailyMap_Put(t *testing.T) {
	key := valueobject.DateKeyOf(baseTime)

	t.Run("real replaces projected", func(t *testing.T) {
		m := DailyMap{}
		m.put(DailyUsageEntry{Date: key, Usage: 3, IsProjected: true})
		m.put(DailyUsageEntry{Date: key, Usage: 7})

		if got := m[key]; got.IsProjected || got.Usage != 7 {
			t.Errorf("got %+v, want real usage 7", got)
		}
	})

	t.Run("projected never replaces real", func(t *testing.T) {
		m := DailyMap{}
		m.put(DailyUsageEntry{Date: key, Usage: 7})
		m.put(DailyUsageEntry{Date: key, Usage: 3, IsProjected: true})

		if got := m[key]; got.IsProjected || got.Usage != 7 {
			t.Errorf("got %+v, want real usage 7", got)
		}
	})

	t.Run("real does not replace real", func(t *testing.T) {
		m := DailyMap{}
		m.put(DailyUsageEntry{Date: key, Usage: 7})
		m.put(DailyUsageEntry{Date: key, Usage: 9})

		if got := m[key]; got.Usage != 7 {
			t.Errorf("got %+v, want usage 7", got)
		}
	})
}

func TestDailyMap_Range(t *testing.T) {
	records := []*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(10), 200)}
	daily := BuildDailyMap(records, valueobject.DefaultUsageParams())

	got := daily.Range(day(2), day(4))

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Date != valueobject.DateKeyOf(day(2)) || got[2].Date != valueobject.DateKeyOf(day(4)) {
		t.Errorf("unexpected range bounds %s..%s", got[0].Date, got[2].Date)
	}

	if all := daily.Range(time.Time{}, time.Time{}); len(all) != len(daily) {
		t.Errorf("open range returned %d of %d entries", len(all), len(daily))
	}
}

func TestAvgDailyUsageAndBlendedRate(t *testing.T) {
	expensive := entity.NewPurchase(day(4), 180, decimal.NewFromInt(90), decimal.NewFromInt(9), decimal.NewFromInt(1), 20)
	records := []*entity.Record{purchaseAt(day(0), 100), spotCheckAt(day(2), 140), expensive}

	if got := AvgDailyUsage(records); got != 20 {
		t.Errorf("AvgDailyUsage() = %v, want 20", got)
	}
	if got := BlendedRate(records); !almostEqual(got, 150.0/30.0) {
		t.Errorf("BlendedRate() = %v, want 5", got)
	}
	if got := BlendedRate([]*entity.Record{spotCheckAt(day(0), 10)}); got != 0 {
		t.Errorf("BlendedRate() without purchases = %v, want 0", got)
	}
	if got := AvgDailyUsage([]*entity.Record{purchaseAt(day(0), 100), purchaseAt(day(0), 120)}); got != 0 {
		t.Errorf("AvgDailyUsage() without elapsed time = %v, want 0", got)
	}
}
