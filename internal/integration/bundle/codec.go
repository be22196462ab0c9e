// Package bundle encodes and decodes the backup document exchanged with
// Drive, the export/import endpoints and the CLI.
package bundle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// Document is the JSON shape of a backup bundle.
type Document struct {
	Records     []RecordDocument `json:"records"`
	Currency    string           `json:"currency"`
	LastUpdated string           `json:"lastUpdated"`
}

// RecordDocument is the JSON shape of a single record.
type RecordDocument struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Price        json.Number `json:"price"`
	VAT          json.Number `json:"vat"`
	ServiceFee   json.Number `json:"serviceFee"`
	Units        float64     `json:"units"`
	MeterReading float64     `json:"meterReading"`
	RecordType   string      `json:"recordType,omitempty"`
}

// Encode serializes a bundle.
func Encode(b *entity.BackupBundle) ([]byte, error) {
	return json.Marshal(FromEntity(b))
}

// Decode parses a bundle. Records without a kind are purchases.
func Decode(data []byte) (*entity.BackupBundle, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrMalformedBackup, err)
	}
	return doc.ToEntity()
}

// FromEntity converts a bundle to its document form.
func FromEntity(b *entity.BackupBundle) *Document {
	doc := &Document{
		Records:     make([]RecordDocument, 0, len(b.Records)),
		Currency:    b.Currency,
		LastUpdated: b.LastUpdated.UTC().Format(time.RFC3339Nano),
	}
	for _, r := range b.Records {
		if r == nil {
			continue
		}
		doc.Records = append(doc.Records, RecordDocument{
			ID:           r.ID.String(),
			Date:         r.Timestamp.UTC().Format(time.RFC3339Nano),
			Price:        json.Number(r.Price.String()),
			VAT:          json.Number(r.VAT.String()),
			ServiceFee:   json.Number(r.ServiceFee.String()),
			Units:        r.Units,
			MeterReading: r.MeterReading,
			RecordType:   string(r.Kind),
		})
	}
	return doc
}

// ToEntity converts the document into a bundle, validating every record.
func (d *Document) ToEntity() (*entity.BackupBundle, error) {
	records := make([]*entity.Record, 0, len(d.Records))
	for i, rd := range d.Records {
		record, err := rd.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domainerror.ErrMalformedBackup, i, err)
		}
		records = append(records, record)
	}

	var lastUpdated time.Time
	if d.LastUpdated != "" {
		parsed, err := ParseDate(d.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("%w: lastUpdated: %v", domainerror.ErrMalformedBackup, err)
		}
		lastUpdated = parsed
	}

	return &entity.BackupBundle{
		Records:     records,
		Currency:    d.Currency,
		LastUpdated: lastUpdated,
	}, nil
}

// ToEntity converts a record document into a domain record.
func (rd RecordDocument) ToEntity() (*entity.Record, error) {
	kind, ok := entity.ParseRecordKind(rd.RecordType)
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", rd.RecordType)
	}

	ts, err := ParseDate(rd.Date)
	if err != nil {
		return nil, err
	}

	price, err := parseAmount(rd.Price)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	vat, err := parseAmount(rd.VAT)
	if err != nil {
		return nil, fmt.Errorf("vat: %w", err)
	}
	fee, err := parseAmount(rd.ServiceFee)
	if err != nil {
		return nil, fmt.Errorf("serviceFee: %w", err)
	}

	var record *entity.Record
	if kind == entity.RecordKindSpotCheck {
		record = entity.NewSpotCheck(ts, rd.MeterReading)
	} else {
		record = entity.NewPurchase(ts, rd.MeterReading, price, vat, fee, rd.Units)
	}

	if strings.TrimSpace(rd.ID) != "" {
		record.ID = entity.RecordIDFromString(rd.ID)
	} else {
		record.ID = uuid.New()
	}

	return record, nil
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(n))
}
