// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind discriminates purchases from meter-only spot checks.
type RecordKind string

const (
	RecordKindPurchase  RecordKind = "PURCHASE"
	RecordKindSpotCheck RecordKind = "SPOT_CHECK"
)

// IsValid reports whether the kind is one of the known variants.
func (k RecordKind) IsValid() bool {
	return k == RecordKindPurchase || k == RecordKindSpotCheck
}

// ParseRecordKind converts an ingested kind tag into a RecordKind.
// An absent tag is treated as a purchase; unknown tags are rejected.
func ParseRecordKind(raw string) (RecordKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", string(RecordKindPurchase):
		return RecordKindPurchase, true
	case string(RecordKindSpotCheck), "SPOTCHECK":
		return RecordKindSpotCheck, true
	default:
		return "", false
	}
}

// recordNamespace is used to derive stable IDs for imported records whose
// identifiers are not UUIDs.
var recordNamespace = uuid.MustParse("6f2b8a8e-3c1d-4f4e-9a57-0c9f3d1b7e21")

// RecordIDFromString parses an external identifier, deriving a deterministic
// UUID when the identifier is not already one.
func RecordIDFromString(raw string) uuid.UUID {
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(recordNamespace, []byte(raw))
}

// Record is a single purchase or spot-check entry in the meter history.
type Record struct {
	ID           uuid.UUID
	Kind         RecordKind
	Timestamp    time.Time
	MeterReading float64
	Price        decimal.Decimal
	VAT          decimal.Decimal
	ServiceFee   decimal.Decimal
	Units        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPurchase creates a new purchase record.
func NewPurchase(timestamp time.Time, meterReading float64, price, vat, serviceFee decimal.Decimal, units float64) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:           uuid.New(),
		Kind:         RecordKindPurchase,
		Timestamp:    timestamp.UTC(),
		MeterReading: meterReading,
		Price:        price,
		VAT:          vat,
		ServiceFee:   serviceFee,
		Units:        units,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewSpotCheck creates a meter-reading-only record. Money and units are always zero.
func NewSpotCheck(timestamp time.Time, meterReading float64) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:           uuid.New(),
		Kind:         RecordKindSpotCheck,
		Timestamp:    timestamp.UTC(),
		MeterReading: meterReading,
		Price:        decimal.Zero,
		VAT:          decimal.Zero,
		ServiceFee:   decimal.Zero,
		Units:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsSpotCheck reports whether the record carries a meter reading only.
func (r *Record) IsSpotCheck() bool {
	return r.Kind == RecordKindSpotCheck
}

// IsPurchase reports whether the record is a purchase.
func (r *Record) IsPurchase() bool {
	return r.Kind == RecordKindPurchase
}

// HasPurchasedUnits reports whether the record is a purchase with units > 0.
func (r *Record) HasPurchasedUnits() bool {
	return r.IsPurchase() && r.Units > 0
}

// TotalCost returns price + vat + service fee.
func (r *Record) TotalCost() decimal.Decimal {
	return r.Price.Add(r.VAT).Add(r.ServiceFee)
}

// EffectiveRate returns the total cost per unit. The second value is false
// when no units were purchased.
func (r *Record) EffectiveRate() (decimal.Decimal, bool) {
	if r.Units <= 0 {
		return decimal.Zero, false
	}
	return r.TotalCost().Div(decimal.NewFromFloat(r.Units)), true
}

// Clone returns a copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}
