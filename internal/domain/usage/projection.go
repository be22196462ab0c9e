package usage

import (
	"sort"
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// DailyUsageEntry is the estimated usage and cost for one calendar day.
type DailyUsageEntry struct {
	Date        valueobject.DateKey
	Usage       float64
	Cost        float64
	IsProjected bool
}

// DailyMap holds one entry per populated calendar day.
type DailyMap map[valueobject.DateKey]DailyUsageEntry

// put stores entry unless the day already holds data that is at least as
// trustworthy. Real data replaces projections, never the other way round.
func (m DailyMap) put(entry DailyUsageEntry) {
	existing, ok := m[entry.Date]
	if ok && !(existing.IsProjected && !entry.IsProjected) {
		return
	}
	m[entry.Date] = entry
}

// Entries returns the map's entries sorted by date.
func (m DailyMap) Entries() []DailyUsageEntry {
	entries := make([]DailyUsageEntry, 0, len(m))
	for _, e := range m {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries
}

// ProjectedDays counts entries that are forward projections.
func (m DailyMap) ProjectedDays() int {
	count := 0
	for _, e := range m {
		if e.IsProjected {
			count++
		}
	}
	return count
}

// BlendedRate returns total cost divided by total units over purchases with
// units > 0, or zero when there are none.
func BlendedRate(records []*entity.Record) float64 {
	var cost, units float64
	for _, r := range purchasesWithUnits(records) {
		cost += r.TotalCost().InexactFloat64()
		units += r.Units
	}
	if units <= 0 {
		return 0
	}
	return cost / units
}

// AvgDailyUsage returns the net meter increase across the whole history
// divided by the elapsed days. Spot checks count. It returns zero with fewer
// than two records, no elapsed time or no net usage.
func AvgDailyUsage(records []*entity.Record) float64 {
	sorted := chronological(records)
	if len(sorted) < 2 {
		return 0
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	days := daysBetween(first.Timestamp, last.Timestamp)
	usage := last.MeterReading - first.MeterReading
	if days <= 0 || usage <= 0 {
		return 0
	}

	return usage / days
}

// BuildDailyMap estimates usage for every day between the first and last
// record by spreading each interval's usage evenly across its days, then
// projects the average daily usage forward for the configured horizon.
func BuildDailyMap(records []*entity.Record, params valueobject.UsageParams) DailyMap {
	params = params.Normalize()
	daily := make(DailyMap)

	sorted := chronological(records)
	if len(sorted) == 0 {
		return daily
	}

	rate := BlendedRate(sorted)

	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]

		days := daysBetween(prev.Timestamp, next.Timestamp)
		usage := next.MeterReading - prev.MeterReading
		if days <= 0 || usage < 0 {
			continue
		}

		perDay := usage / days
		end := next.Timestamp.UTC()
		for day := prev.Timestamp.UTC(); day.Before(end); day = day.AddDate(0, 0, 1) {
			daily.put(DailyUsageEntry{
				Date:  valueobject.DateKeyOf(day),
				Usage: perDay,
				Cost:  perDay * rate,
			})
		}
	}

	avg := AvgDailyUsage(sorted)
	if avg <= 0 {
		return daily
	}

	last := sorted[len(sorted)-1].Timestamp.UTC()
	for offset := 1; offset <= params.ProjectionHorizonDays; offset++ {
		daily.put(DailyUsageEntry{
			Date:        valueobject.DateKeyOf(last.AddDate(0, 0, offset)),
			Usage:       avg,
			Cost:        avg * rate,
			IsProjected: true,
		})
	}

	return daily
}

// Range returns the entries between from and to inclusive, sorted by date.
// A zero bound is open.
func (m DailyMap) Range(from, to time.Time) []DailyUsageEntry {
	var fromKey, toKey valueobject.DateKey
	if !from.IsZero() {
		fromKey = valueobject.DateKeyOf(from)
	}
	if !to.IsZero() {
		toKey = valueobject.DateKeyOf(to)
	}

	out := make([]DailyUsageEntry, 0)
	for _, e := range m.Entries() {
		if fromKey != "" && e.Date < fromKey {
			continue
		}
		if toKey != "" && e.Date > toKey {
			continue
		}
		out = append(out, e)
	}
	return out
}
