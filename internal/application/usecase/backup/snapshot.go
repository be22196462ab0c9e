// Package backup contains backup, restore, export and import use cases.
package backup

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// snapshotter reads and replaces the complete data set.
type snapshotter struct {
	recordRepo      adapter.RecordRepository
	settingsRepo    adapter.SettingsRepository
	dataStore       adapter.DataStore
	defaultCurrency string
}

func (s *snapshotter) take(ctx context.Context) (*entity.BackupBundle, error) {
	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupInternal,
			"failed to load records",
			err,
		)
	}

	currency := s.defaultCurrency
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupInternal,
			"failed to load settings",
			err,
		)
	}
	if settings != nil && settings.Currency != "" {
		currency = settings.Currency
	}

	return entity.NewBackupBundle(records, currency), nil
}

// replace swaps the stored data for the bundle contents in one transaction.
func (s *snapshotter) replace(ctx context.Context, bundle *entity.BackupBundle) (int, error) {
	records, err := normalizeRecords(bundle.Records)
	if err != nil {
		return 0, err
	}

	settings := entity.NewSettings(s.currencyOf(bundle))
	if err := s.dataStore.RestoreSnapshot(ctx, records, settings); err != nil {
		return 0, domainerror.NewBackupError(
			domainerror.ErrCodeBackupInternal,
			"failed to replace stored data",
			err,
		)
	}

	return len(records), nil
}

func (s *snapshotter) currencyOf(bundle *entity.BackupBundle) string {
	currency := strings.TrimSpace(bundle.Currency)
	n := utf8.RuneCountInString(currency)
	if n == 0 || n > entity.MaxCurrencyLength {
		return s.defaultCurrency
	}
	return currency
}

// normalizeRecords validates restored records and collapses duplicate IDs,
// keeping the last occurrence.
func normalizeRecords(records []*entity.Record) ([]*entity.Record, error) {
	byID := make(map[string]int, len(records))
	out := make([]*entity.Record, 0, len(records))
	now := time.Now().UTC()

	for _, r := range records {
		if r == nil {
			continue
		}
		if !r.Kind.IsValid() {
			return nil, malformed("record " + r.ID.String() + " has an unknown kind")
		}
		if r.MeterReading < 0 {
			return nil, malformed("record " + r.ID.String() + " has a negative meter reading")
		}
		if r.Timestamp.IsZero() {
			return nil, malformed("record " + r.ID.String() + " has no date")
		}

		normalized := r.Clone()
		normalized.Timestamp = normalized.Timestamp.UTC()
		if normalized.IsSpotCheck() {
			normalized.Price = decimal.Zero
			normalized.VAT = decimal.Zero
			normalized.ServiceFee = decimal.Zero
			normalized.Units = 0
		}
		if normalized.CreatedAt.IsZero() {
			normalized.CreatedAt = now
		}
		normalized.UpdatedAt = now

		key := normalized.ID.String()
		if idx, ok := byID[key]; ok {
			out[idx] = normalized
			continue
		}
		byID[key] = len(out)
		out = append(out, normalized)
	}

	return out, nil
}

func malformed(message string) error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeMalformedBackup,
		message,
		domainerror.ErrMalformedBackup,
	)
}

func storageUnavailable() error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeBackupStorageUnavailable,
		"backup storage is not configured",
		domainerror.ErrBackupStorageUnavailable,
	)
}
