package backup

import (
	"context"
	"errors"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// RestoreBackupOutput reports what was restored.
type RestoreBackupOutput struct {
	RecordCount int
	Currency    string
}

// RestoreBackupUseCase replaces local data with the remote backup.
type RestoreBackupUseCase struct {
	snapshot *snapshotter
	storage  adapter.BackupStorage
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(dataStore adapter.DataStore, storage adapter.BackupStorage, defaultCurrency string) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		snapshot: &snapshotter{
			dataStore:       dataStore,
			defaultCurrency: defaultCurrency,
		},
		storage: storage,
	}
}

// Execute downloads the backup and replaces all records and the currency.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context) (*RestoreBackupOutput, error) {
	if uc.storage == nil || !uc.storage.IsAvailable() {
		return nil, storageUnavailable()
	}

	bundle, err := load(ctx, uc.storage)
	if err != nil {
		return nil, err
	}

	count, err := uc.snapshot.replace(ctx, bundle)
	if err != nil {
		return nil, err
	}

	currency := uc.snapshot.currencyOf(bundle)
	slog.Info("Backup restored", "records", count, "currency", currency)

	return &RestoreBackupOutput{RecordCount: count, Currency: currency}, nil
}

func load(ctx context.Context, storage adapter.BackupStorage) (*entity.BackupBundle, error) {
	bundle, err := storage.Load(ctx)
	if err == nil {
		return bundle, nil
	}

	var backupErr *domainerror.BackupError
	switch {
	case errors.As(err, &backupErr):
		return nil, backupErr
	case errors.Is(err, domainerror.ErrBackupNotFound):
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupNotFound,
			"no backup file found",
			domainerror.ErrBackupNotFound,
		)
	case errors.Is(err, domainerror.ErrMalformedBackup):
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackup,
			"backup bundle is malformed",
			err,
		)
	default:
		slog.Error("Backup download failed", "error", err)
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupDownloadFailed,
			"failed to download backup",
			errors.Join(domainerror.ErrBackupDownloadFailed, err),
		)
	}
}
