package backup

import (
	"context"
	"time"

	"github.com/volttrack/backend/internal/application/adapter"
)

// PreviewBackupOutput summarizes the stored backup without applying it.
type PreviewBackupOutput struct {
	RecordCount int
	Currency    string
	LastUpdated time.Time
}

// PreviewBackupUseCase inspects the remote backup.
type PreviewBackupUseCase struct {
	storage adapter.BackupStorage
}

// NewPreviewBackupUseCase creates a new PreviewBackupUseCase instance.
func NewPreviewBackupUseCase(storage adapter.BackupStorage) *PreviewBackupUseCase {
	return &PreviewBackupUseCase{storage: storage}
}

// Execute downloads and summarizes the backup.
func (uc *PreviewBackupUseCase) Execute(ctx context.Context) (*PreviewBackupOutput, error) {
	if uc.storage == nil || !uc.storage.IsAvailable() {
		return nil, storageUnavailable()
	}

	bundle, err := load(ctx, uc.storage)
	if err != nil {
		return nil, err
	}

	return &PreviewBackupOutput{
		RecordCount: len(bundle.Records),
		Currency:    bundle.Currency,
		LastUpdated: bundle.LastUpdated,
	}, nil
}
