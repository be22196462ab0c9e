package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/usage"
)

// RecordRequest represents the request body for creating or replacing a record.
type RecordRequest struct {
	Kind         string          `json:"kind,omitempty" binding:"omitempty,oneof=PURCHASE SPOT_CHECK"`
	Timestamp    string          `json:"timestamp,omitempty"`
	MeterReading *float64        `json:"meter_reading" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	VAT          decimal.Decimal `json:"vat"`
	ServiceFee   decimal.Decimal `json:"service_fee"`
	Units        float64         `json:"units"`
}

// CheckReadingRequest represents the request body for a live reading check.
type CheckReadingRequest struct {
	MeterReading *float64 `json:"meter_reading" binding:"required"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID            string           `json:"id"`
	Kind          string           `json:"kind"`
	Timestamp     time.Time        `json:"timestamp"`
	MeterReading  float64          `json:"meter_reading"`
	Price         decimal.Decimal  `json:"price"`
	VAT           decimal.Decimal  `json:"vat"`
	ServiceFee    decimal.Decimal  `json:"service_fee"`
	Units         float64          `json:"units"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
	EffectiveRate *decimal.Decimal `json:"effective_rate,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// CheckReadingResponse represents the result of a live reading check.
type CheckReadingResponse struct {
	Warning      bool    `json:"warning"`
	CurrentUsage float64 `json:"current_usage,omitempty"`
	AverageUsage float64 `json:"average_usage,omitempty"`
	Threshold    float64 `json:"threshold,omitempty"`
	LastDate     *string `json:"last_date,omitempty"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(r *entity.Record) RecordResponse {
	response := RecordResponse{
		ID:           r.ID.String(),
		Kind:         string(r.Kind),
		Timestamp:    r.Timestamp,
		MeterReading: r.MeterReading,
		Price:        r.Price,
		VAT:          r.VAT,
		ServiceFee:   r.ServiceFee,
		Units:        r.Units,
		TotalCost:    r.TotalCost(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if rate, ok := r.EffectiveRate(); ok {
		rounded := rate.Round(4)
		response.EffectiveRate = &rounded
	}

	return response
}

// ToRecordListResponse converts a slice of records to a RecordListResponse DTO.
func ToRecordListResponse(records []*entity.Record) RecordListResponse {
	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = ToRecordResponse(r)
	}
	return RecordListResponse{Records: items, Total: len(items)}
}

// ToCheckReadingResponse converts a reading warning to its DTO. A nil warning
// means the reading looks normal.
func ToCheckReadingResponse(w *usage.ReadingWarning) CheckReadingResponse {
	if w == nil {
		return CheckReadingResponse{}
	}
	lastDate := w.LastDate.Format(time.RFC3339)
	return CheckReadingResponse{
		Warning:      true,
		CurrentUsage: round2(w.CurrentUsage),
		AverageUsage: round2(w.AverageUsage),
		Threshold:    round2(w.Threshold),
		LastDate:     &lastDate,
	}
}
