package usage

import (
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

// Summary holds whole-history totals.
type Summary struct {
	TotalSpent  decimal.Decimal
	TotalUnits  float64
	AvgCost     decimal.Decimal
	LastReading float64
	RecordCount int
}

// ComputeSummary totals spend and units over purchases and reports the meter
// reading of the most recent record of any kind.
func ComputeSummary(records []*entity.Record) Summary {
	summary := Summary{
		TotalSpent: decimal.Zero,
		AvgCost:    decimal.Zero,
	}

	sorted := chronological(records)
	summary.RecordCount = len(sorted)
	if len(sorted) == 0 {
		return summary
	}

	for _, r := range sorted {
		if r.IsSpotCheck() {
			continue
		}
		summary.TotalSpent = summary.TotalSpent.Add(r.TotalCost())
		summary.TotalUnits += r.Units
	}

	if summary.TotalUnits > 0 {
		summary.AvgCost = summary.TotalSpent.Div(decimal.NewFromFloat(summary.TotalUnits))
	}

	summary.LastReading = sorted[len(sorted)-1].MeterReading

	return summary
}
