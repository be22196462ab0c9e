package usage

import (
	"testing"
	"time"

	"github.com/volttrack/backend/internal/domain/valueobject"
)

func TestBuildMonthView_Totals(t *testing.T) {
	daily := DailyMap{}
	for _, e := range []DailyUsageEntry{
		{Date: valueobject.DateKeyFor(2024, time.February, 28), Usage: 5, Cost: 25},
		{Date: valueobject.DateKeyFor(2024, time.March, 2), Usage: 7, Cost: 35},
		{Date: valueobject.DateKeyFor(2024, time.March, 30), Usage: 3, Cost: 15, IsProjected: true},
		{Date: valueobject.DateKeyFor(2024, time.April, 1), Usage: 11, Cost: 55, IsProjected: true},
	} {
		daily[e.Date] = e
	}

	view := BuildMonthView(daily, 2024, time.March)

	if view.MonthTotalUsage != 10 {
		t.Errorf("MonthTotalUsage = %v, want 10", view.MonthTotalUsage)
	}
	if view.MonthTotalCost != 50 {
		t.Errorf("MonthTotalCost = %v, want 50", view.MonthTotalCost)
	}
	if view.ProjectedDayCount != 1 {
		t.Errorf("ProjectedDayCount = %d, want 1", view.ProjectedDayCount)
	}

	if len(view.Weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(view.Weeks))
	}

	first := view.Weeks[0]
	if !first.StartDate.Equal(time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("grid starts %v, want Monday 2024-02-26", first.StartDate)
	}
	if first.TotalUsage != 12 || first.TotalCost != 60 {
		t.Errorf("first week totals = %v/%v, want 12/60", first.TotalUsage, first.TotalCost)
	}
	if first.DaysInSelectedMonth != 3 || first.IsCurrentMonth {
		t.Errorf("first week = %+v, want 3 days and not current month", first)
	}

	last := view.Weeks[4]
	if !last.EndDate.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("grid ends %v, want Sunday 2024-03-31", last.EndDate)
	}
	if last.TotalUsage != 3 {
		t.Errorf("last week usage = %v, want 3", last.TotalUsage)
	}

	for i, w := range view.Weeks {
		if w.WeekNumber != i+1 {
			t.Errorf("week %d numbered %d", i, w.WeekNumber)
		}
		if w.StartDate.Weekday() != time.Monday || w.EndDate.Weekday() != time.Sunday {
			t.Errorf("week %d spans %v..%v, want Monday..Sunday", i+1, w.StartDate.Weekday(), w.EndDate.Weekday())
		}
	}
}

func TestBuildMonthView_Grid(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantWeeks   int
		wantInMonth []int
	}{
		{
			name:        "month aligned to Monday and Sunday",
			year:        2021,
			month:       time.February,
			wantWeeks:   4,
			wantInMonth: []int{7, 7, 7, 7},
		},
		{
			name:        "partial edge weeks",
			year:        2024,
			month:       time.August,
			wantWeeks:   5,
			wantInMonth: []int{4, 7, 7, 7, 6},
		},
		{
			name:        "leap february",
			year:        2024,
			month:       time.February,
			wantWeeks:   5,
			wantInMonth: []int{4, 7, 7, 7, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMonthView(DailyMap{}, tt.year, tt.month)

			if len(view.Weeks) != tt.wantWeeks {
				t.Fatalf("expected %d weeks, got %d", tt.wantWeeks, len(view.Weeks))
			}
			for i, w := range view.Weeks {
				if w.DaysInSelectedMonth != tt.wantInMonth[i] {
					t.Errorf("week %d has %d days in month, want %d", i+1, w.DaysInSelectedMonth, tt.wantInMonth[i])
				}
				if w.IsCurrentMonth != (tt.wantInMonth[i] >= 4) {
					t.Errorf("week %d IsCurrentMonth = %v", i+1, w.IsCurrentMonth)
				}
				if w.TotalUsage != 0 || w.TotalCost != 0 {
					t.Errorf("week %d should be empty", i+1)
				}
			}
			if view.MonthTotalUsage != 0 || view.ProjectedDayCount != 0 {
				t.Errorf("empty map produced totals %+v", view)
			}
		})
	}
}
