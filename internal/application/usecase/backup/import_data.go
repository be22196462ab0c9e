package backup

import (
	"context"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// ImportDataInput carries an uploaded bundle.
type ImportDataInput struct {
	Bundle *entity.BackupBundle
}

// ImportDataOutput reports what was imported.
type ImportDataOutput struct {
	RecordCount int
	Currency    string
}

// ImportDataUseCase replaces local data with an uploaded bundle.
type ImportDataUseCase struct {
	snapshot *snapshotter
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(dataStore adapter.DataStore, defaultCurrency string) *ImportDataUseCase {
	return &ImportDataUseCase{
		snapshot: &snapshotter{
			dataStore:       dataStore,
			defaultCurrency: defaultCurrency,
		},
	}
}

// Execute replaces all records and the currency with the bundle contents.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) (*ImportDataOutput, error) {
	if input.Bundle == nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackup,
			"bundle is required",
			domainerror.ErrMalformedBackup,
		)
	}

	count, err := uc.snapshot.replace(ctx, input.Bundle)
	if err != nil {
		return nil, err
	}

	currency := uc.snapshot.currencyOf(input.Bundle)
	slog.Info("Data imported", "records", count, "currency", currency)

	return &ImportDataOutput{RecordCount: count, Currency: currency}, nil
}
