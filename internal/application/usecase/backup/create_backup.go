package backup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/volttrack/backend/internal/application/adapter"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// Messages reported after a backup upload.
const (
	MessageBackupUpdated = "Updated existing backup"
	MessageBackupCreated = "Created new backup file"
)

// CreateBackupOutput describes the uploaded backup.
type CreateBackupOutput struct {
	Message     string
	FileID      string
	RecordCount int
	LastUpdated time.Time
}

// CreateBackupUseCase uploads the full data set to backup storage.
type CreateBackupUseCase struct {
	snapshot *snapshotter
	storage  adapter.BackupStorage
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(
	recordRepo adapter.RecordRepository,
	settingsRepo adapter.SettingsRepository,
	storage adapter.BackupStorage,
	defaultCurrency string,
) *CreateBackupUseCase {
	return &CreateBackupUseCase{
		snapshot: &snapshotter{
			recordRepo:      recordRepo,
			settingsRepo:    settingsRepo,
			defaultCurrency: defaultCurrency,
		},
		storage: storage,
	}
}

// Execute uploads the backup, updating the existing file when one exists.
func (uc *CreateBackupUseCase) Execute(ctx context.Context) (*CreateBackupOutput, error) {
	if uc.storage == nil || !uc.storage.IsAvailable() {
		return nil, storageUnavailable()
	}

	bundle, err := uc.snapshot.take(ctx)
	if err != nil {
		return nil, err
	}

	result, err := uc.storage.Save(ctx, bundle)
	if err != nil {
		slog.Error("Backup upload failed", "records", len(bundle.Records), "error", err)
		var backupErr *domainerror.BackupError
		if errors.As(err, &backupErr) {
			return nil, backupErr
		}
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeBackupUploadFailed,
			"failed to upload backup",
			errors.Join(domainerror.ErrBackupUploadFailed, err),
		)
	}

	message := MessageBackupUpdated
	if result.Created {
		message = MessageBackupCreated
	}

	slog.Info("Backup uploaded", "file_id", result.FileID, "created", result.Created, "records", len(bundle.Records))

	return &CreateBackupOutput{
		Message:     message,
		FileID:      result.FileID,
		RecordCount: len(bundle.Records),
		LastUpdated: bundle.LastUpdated,
	}, nil
}
