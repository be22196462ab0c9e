package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/application/usecase/analytics"
	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// SummaryResponse represents whole-history totals.
type SummaryResponse struct {
	TotalSpent  decimal.Decimal `json:"total_spent"`
	TotalUnits  float64         `json:"total_units"`
	AvgCost     decimal.Decimal `json:"avg_cost"`
	LastReading float64         `json:"last_reading"`
	RecordCount int             `json:"record_count"`
	Currency    string          `json:"currency"`
}

// AnomalyResponse represents one flagged interval.
type AnomalyResponse struct {
	StartID   string    `json:"start_id"`
	EndID     string    `json:"end_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Usage     float64   `json:"usage"`
	DayDelta  float64   `json:"day_delta"`
	Average   float64   `json:"average"`
	Threshold float64   `json:"threshold"`
}

// AnomalyListResponse represents every flagged interval and the most recent one.
type AnomalyListResponse struct {
	Anomalies []AnomalyResponse `json:"anomalies"`
	Latest    *AnomalyResponse  `json:"latest"`
}

// IntervalResponse represents the span between two adjacent purchases.
type IntervalResponse struct {
	StartID    string    `json:"start_id"`
	EndID      string    `json:"end_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	UsageDelta float64   `json:"usage_delta"`
	DayDelta   float64   `json:"day_delta"`
	DailyRate  float64   `json:"daily_rate"`
}

// IntervalListResponse represents all purchase intervals.
type IntervalListResponse struct {
	Intervals []IntervalResponse `json:"intervals"`
}

// DailyUsageResponse represents one calendar day.
type DailyUsageResponse struct {
	Date        string  `json:"date"`
	Usage       float64 `json:"usage"`
	Cost        float64 `json:"cost"`
	IsProjected bool    `json:"is_projected"`
}

// DailyUsageListResponse represents the daily usage map.
type DailyUsageListResponse struct {
	Days          []DailyUsageResponse `json:"days"`
	AvgDailyUsage float64              `json:"avg_daily_usage"`
	AvgCostPerKwh float64              `json:"avg_cost_per_kwh"`
	ProjectedDays int                  `json:"projected_days"`
}

// WeekResponse represents one Monday-start week of a month view.
type WeekResponse struct {
	WeekNumber          int     `json:"week_number"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	TotalUsage          float64 `json:"total_usage"`
	TotalCost           float64 `json:"total_cost"`
	DaysInSelectedMonth int     `json:"days_in_selected_month"`
	IsCurrentMonth      bool    `json:"is_current_month"`
}

// MonthViewResponse represents the calendar breakdown of a month.
type MonthViewResponse struct {
	Year              int            `json:"year"`
	Month             int            `json:"month"`
	Weeks             []WeekResponse `json:"weeks"`
	MonthTotalUsage   float64        `json:"month_total_usage"`
	MonthTotalCost    float64        `json:"month_total_cost"`
	ProjectedDayCount int            `json:"projected_day_count"`
	AvgDailyUsage     float64        `json:"avg_daily_usage"`
	AvgCostPerKwh     float64        `json:"avg_cost_per_kwh"`
}

// ChartPointResponse represents one purchase on the history chart.
type ChartPointResponse struct {
	Date    string  `json:"date"`
	Cost    float64 `json:"cost"`
	Units   float64 `json:"units"`
	Reading float64 `json:"reading"`
	Rate    float64 `json:"rate"`
}

// ChartSeriesResponse represents the purchase history chart.
type ChartSeriesResponse struct {
	Points []ChartPointResponse `json:"points"`
}

// ToSummaryResponse converts the summary output to its DTO.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	s := output.Summary
	return SummaryResponse{
		TotalSpent:  s.TotalSpent.Round(2),
		TotalUnits:  round2(s.TotalUnits),
		AvgCost:     s.AvgCost.Round(2),
		LastReading: s.LastReading,
		RecordCount: s.RecordCount,
		Currency:    output.Currency,
	}
}

func toAnomalyResponse(a usage.AnomalyInterval) AnomalyResponse {
	return AnomalyResponse{
		StartID:   a.StartID.String(),
		EndID:     a.EndID.String(),
		Start:     a.Start,
		End:       a.End,
		Usage:     round2(a.Usage),
		DayDelta:  round2(a.DayDelta),
		Average:   round2(a.Average),
		Threshold: round2(a.Threshold),
	}
}

// ToAnomalyListResponse converts the anomalies output to its DTO.
func ToAnomalyListResponse(output *analytics.GetAnomaliesOutput) AnomalyListResponse {
	response := AnomalyListResponse{Anomalies: make([]AnomalyResponse, len(output.Anomalies))}
	for i, a := range output.Anomalies {
		response.Anomalies[i] = toAnomalyResponse(a)
	}
	if output.Latest != nil {
		latest := toAnomalyResponse(*output.Latest)
		response.Latest = &latest
	}
	return response
}

// ToIntervalListResponse converts the intervals output to its DTO.
func ToIntervalListResponse(output *analytics.GetIntervalsOutput) IntervalListResponse {
	response := IntervalListResponse{Intervals: make([]IntervalResponse, len(output.Intervals))}
	for i, in := range output.Intervals {
		response.Intervals[i] = IntervalResponse{
			StartID:    in.Start.ID.String(),
			EndID:      in.End.ID.String(),
			Start:      in.Start.Timestamp,
			End:        in.End.Timestamp,
			UsageDelta: round2(in.UsageDelta),
			DayDelta:   round2(in.DayDelta),
			DailyRate:  round2(in.DailyRate),
		}
	}
	return response
}

func toDailyUsageResponse(e usage.DailyUsageEntry) DailyUsageResponse {
	return DailyUsageResponse{
		Date:        e.Date.String(),
		Usage:       round2(e.Usage),
		Cost:        round2(e.Cost),
		IsProjected: e.IsProjected,
	}
}

// ToDailyUsageListResponse converts the daily usage output to its DTO.
func ToDailyUsageListResponse(output *analytics.GetDailyUsageOutput) DailyUsageListResponse {
	response := DailyUsageListResponse{
		Days:          make([]DailyUsageResponse, len(output.Entries)),
		AvgDailyUsage: round2(output.AvgDailyUsage),
		AvgCostPerKwh: round2(output.AvgCostPerKwh),
		ProjectedDays: output.ProjectedDays,
	}
	for i, e := range output.Entries {
		response.Days[i] = toDailyUsageResponse(e)
	}
	return response
}

// ToMonthViewResponse converts the month view output to its DTO.
func ToMonthViewResponse(output *analytics.GetMonthViewOutput) MonthViewResponse {
	v := output.View
	response := MonthViewResponse{
		Year:              v.Year,
		Month:             int(v.Month),
		Weeks:             make([]WeekResponse, len(v.Weeks)),
		MonthTotalUsage:   round2(v.MonthTotalUsage),
		MonthTotalCost:    round2(v.MonthTotalCost),
		ProjectedDayCount: v.ProjectedDayCount,
		AvgDailyUsage:     round2(output.AvgDailyUsage),
		AvgCostPerKwh:     round2(output.AvgCostPerKwh),
	}
	for i, w := range v.Weeks {
		response.Weeks[i] = WeekResponse{
			WeekNumber:          w.WeekNumber,
			StartDate:           w.StartDate.Format(valueobject.DateLayout),
			EndDate:             w.EndDate.Format(valueobject.DateLayout),
			TotalUsage:          round2(w.TotalUsage),
			TotalCost:           round2(w.TotalCost),
			DaysInSelectedMonth: w.DaysInSelectedMonth,
			IsCurrentMonth:      w.IsCurrentMonth,
		}
	}
	return response
}

// ToChartSeriesResponse converts the chart output to its DTO.
func ToChartSeriesResponse(output *analytics.GetChartSeriesOutput) ChartSeriesResponse {
	response := ChartSeriesResponse{Points: make([]ChartPointResponse, len(output.Points))}
	for i, p := range output.Points {
		response.Points[i] = ChartPointResponse{
			Date:    p.Date.Format(valueobject.DateLayout),
			Cost:    round2(p.Cost),
			Units:   p.Units,
			Reading: p.Reading,
			Rate:    round2(p.Rate),
		}
	}
	return response
}
