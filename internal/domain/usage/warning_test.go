package usage

import (
	"testing"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

func TestCheckReading(t *testing.T) {
	params := valueobject.DefaultUsageParams()
	base := purchasesOnDays(100, 110, 120)

	tests := []struct {
		name        string
		records     []*entity.Record
		reading     float64
		wantWarning bool
		wantCurrent float64
	}{
		{name: "no history", records: nil, reading: 500},
		{name: "usage within threshold", records: base, reading: 125},
		{name: "usage equal to threshold", records: base, reading: 138},
		{name: "reading below last", records: base, reading: 90},
		{name: "single baseline interval", records: purchasesOnDays(100, 110), reading: 200},
		{name: "usage above threshold", records: base, reading: 140, wantWarning: true, wantCurrent: 20},
		{
			name:        "latest spot check is the reference",
			records:     append(append([]*entity.Record{}, base...), spotCheckAt(day(3), 130)),
			reading:     150,
			wantWarning: true,
			wantCurrent: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckReading(tt.records, tt.reading, params)

			if !tt.wantWarning {
				if got != nil {
					t.Errorf("expected no warning, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a warning")
			}
			if got.CurrentUsage != tt.wantCurrent {
				t.Errorf("CurrentUsage = %v, want %v", got.CurrentUsage, tt.wantCurrent)
			}
			if got.AverageUsage != 10 {
				t.Errorf("AverageUsage = %v, want 10", got.AverageUsage)
			}
			last := tt.records[len(tt.records)-1]
			if !got.LastDate.Equal(last.Timestamp) {
				t.Errorf("LastDate = %v, want %v", got.LastDate, last.Timestamp)
			}
		})
	}
}
