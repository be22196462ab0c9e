// Package record contains meter record use cases.
package record

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// RecordFields are the user-editable fields of a record.
type RecordFields struct {
	Kind         string     // PURCHASE or SPOT_CHECK, empty means PURCHASE
	Timestamp    *time.Time // Optional, defaults to now
	MeterReading float64
	Price        decimal.Decimal
	VAT          decimal.Decimal
	ServiceFee   decimal.Decimal
	Units        float64
}

// buildRecord validates the fields and returns a new record.
func buildRecord(fields RecordFields) (*entity.Record, error) {
	kind, ok := entity.ParseRecordKind(fields.Kind)
	if !ok {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be PURCHASE or SPOT_CHECK",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if fields.MeterReading < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeMeterReading,
			"meter reading must not be negative",
			domainerror.ErrNegativeMeterReading,
		)
	}

	timestamp := time.Now().UTC()
	if fields.Timestamp != nil && !fields.Timestamp.IsZero() {
		timestamp = fields.Timestamp.UTC()
	}

	if kind == entity.RecordKindSpotCheck {
		return entity.NewSpotCheck(timestamp, fields.MeterReading), nil
	}

	if fields.Price.IsNegative() || fields.VAT.IsNegative() || fields.ServiceFee.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeAmount,
			"price, vat and service fee must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if fields.Units <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnitsRequired,
			"purchase units must be greater than zero",
			domainerror.ErrUnitsRequired,
		)
	}

	return entity.NewPurchase(timestamp, fields.MeterReading, fields.Price, fields.VAT, fields.ServiceFee, fields.Units), nil
}
