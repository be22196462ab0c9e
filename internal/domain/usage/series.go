package usage

import (
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
)

// ChartPoint is one purchase plotted over time.
type ChartPoint struct {
	Date    time.Time
	Cost    float64
	Units   float64
	Reading float64
	Rate    float64
}

// BuildChartSeries returns purchases with units > 0 oldest first.
func BuildChartSeries(records []*entity.Record) []ChartPoint {
	purchases := chronological(purchasesWithUnits(records))

	points := make([]ChartPoint, 0, len(purchases))
	for _, r := range purchases {
		point := ChartPoint{
			Date:    r.Timestamp,
			Cost:    r.TotalCost().InexactFloat64(),
			Units:   r.Units,
			Reading: r.MeterReading,
		}
		if rate, ok := r.EffectiveRate(); ok {
			point.Rate = rate.InexactFloat64()
		}
		points = append(points, point)
	}

	return points
}
