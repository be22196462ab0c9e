package usage

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

func TestBuildChartSeries(t *testing.T) {
	records := []*entity.Record{
		purchaseAt(day(5), 160),
		spotCheckAt(day(3), 140),
		entity.NewPurchase(day(4), 150, decimal.NewFromInt(5), decimal.Zero, decimal.Zero, 0),
		purchaseAt(day(0), 100),
	}

	points := BuildChartSeries(records)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !points[0].Date.Equal(day(0)) || !points[1].Date.Equal(day(5)) {
		t.Errorf("points not in chronological order: %v, %v", points[0].Date, points[1].Date)
	}
	if points[0].Cost != 50 || points[0].Units != 10 || points[0].Rate != 5 || points[0].Reading != 100 {
		t.Errorf("unexpected first point %+v", points[0])
	}
}
