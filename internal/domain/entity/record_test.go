package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseRecordKind(t *testing.T) {
	tests := []struct {
		raw    string
		want   RecordKind
		wantOK bool
	}{
		{raw: "", want: RecordKindPurchase, wantOK: true},
		{raw: "PURCHASE", want: RecordKindPurchase, wantOK: true},
		{raw: "spot_check", want: RecordKindSpotCheck, wantOK: true},
		{raw: " SPOT_CHECK ", want: RecordKindSpotCheck, wantOK: true},
		{raw: "REFUND", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRecordKind(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRecordKind(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecord_Costs(t *testing.T) {
	r := NewPurchase(time.Now(), 100, decimal.NewFromInt(100), decimal.NewFromInt(15), decimal.NewFromInt(5), 40)

	if !r.TotalCost().Equal(decimal.NewFromInt(120)) {
		t.Errorf("TotalCost() = %s, want 120", r.TotalCost())
	}
	rate, ok := r.EffectiveRate()
	if !ok || !rate.Equal(decimal.NewFromInt(3)) {
		t.Errorf("EffectiveRate() = %s, %v; want 3, true", rate, ok)
	}

	spot := NewSpotCheck(time.Now(), 150)
	if !spot.TotalCost().IsZero() {
		t.Errorf("spot check TotalCost() = %s, want 0", spot.TotalCost())
	}
	if _, ok := spot.EffectiveRate(); ok {
		t.Error("spot check must not have an effective rate")
	}
	if spot.HasPurchasedUnits() {
		t.Error("spot check must not count as a purchase with units")
	}
}

func TestRecordIDFromString(t *testing.T) {
	a := RecordIDFromString("1")
	b := RecordIDFromString("1")
	c := RecordIDFromString("2")

	if a != b {
		t.Error("derived IDs must be stable")
	}
	if a == c {
		t.Error("different identifiers must derive different IDs")
	}

	existing := NewSpotCheck(time.Now(), 1).ID
	if RecordIDFromString(existing.String()) != existing {
		t.Error("UUID identifiers must be kept as-is")
	}
}
