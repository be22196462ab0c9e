package usage

import (
	"time"

	"github.com/volttrack/backend/internal/domain/valueobject"
)

// daysForCurrentMonth is how many of a week's 7 days must fall in the
// selected month for the week to count as belonging to it.
const daysForCurrentMonth = 4

// WeekBucket aggregates seven consecutive days starting on a Monday.
type WeekBucket struct {
	WeekNumber          int
	StartDate           time.Time
	EndDate             time.Time
	TotalUsage          float64
	TotalCost           float64
	DaysInSelectedMonth int
	IsCurrentMonth      bool
}

// MonthView is the calendar breakdown of a single month.
type MonthView struct {
	Year              int
	Month             time.Month
	Weeks             []WeekBucket
	MonthTotalUsage   float64
	MonthTotalCost    float64
	ProjectedDayCount int
}

// daysSinceMonday maps Monday to 0 and Sunday to 6.
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// BuildMonthView folds the daily map into month totals and a Monday-aligned
// week grid covering the whole month. Days missing from the map contribute
// nothing.
func BuildMonthView(daily DailyMap, year int, month time.Month) MonthView {
	view := MonthView{
		Year:  year,
		Month: month,
		Weeks: []WeekBucket{},
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		entry, ok := daily[valueobject.DateKeyOf(day)]
		if !ok {
			continue
		}
		view.MonthTotalUsage += entry.Usage
		view.MonthTotalCost += entry.Cost
		if entry.IsProjected {
			view.ProjectedDayCount++
		}
	}

	gridStart := first.AddDate(0, 0, -daysSinceMonday(first))
	gridEnd := last.AddDate(0, 0, 6-daysSinceMonday(last))

	for weekStart := gridStart; !weekStart.After(gridEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		bucket := WeekBucket{
			WeekNumber: len(view.Weeks) + 1,
			StartDate:  weekStart,
			EndDate:    weekStart.AddDate(0, 0, 6),
		}

		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			if day.Month() == month && day.Year() == year {
				bucket.DaysInSelectedMonth++
			}
			if entry, ok := daily[valueobject.DateKeyOf(day)]; ok {
				bucket.TotalUsage += entry.Usage
				bucket.TotalCost += entry.Cost
			}
		}
		bucket.IsCurrentMonth = bucket.DaysInSelectedMonth >= daysForCurrentMonth

		view.Weeks = append(view.Weeks, bucket)
	}

	return view
}
