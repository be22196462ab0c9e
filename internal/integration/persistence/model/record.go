// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(20);not null;index"`
	RecordedAt   time.Time       `gorm:"not null;index"`
	MeterReading float64         `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	VAT          decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	ServiceFee   decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Units        float64         `gorm:"not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	kind := entity.RecordKind(m.Kind)
	if !kind.IsValid() {
		kind = entity.RecordKindPurchase
	}

	return &entity.Record{
		ID:           m.ID,
		Kind:         kind,
		Timestamp:    m.RecordedAt.UTC(),
		MeterReading: m.MeterReading,
		Price:        m.Price,
		VAT:          m.VAT,
		ServiceFee:   m.ServiceFee,
		Units:        m.Units,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(r *entity.Record) *RecordModel {
	return &RecordModel{
		ID:           r.ID,
		Kind:         string(r.Kind),
		RecordedAt:   r.Timestamp.UTC(),
		MeterReading: r.MeterReading,
		Price:        r.Price,
		VAT:          r.VAT,
		ServiceFee:   r.ServiceFee,
		Units:        r.Units,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
