package adapter

import (
	"context"

	"github.com/volttrack/backend/internal/domain/entity"
)

// BackupWriteResult describes the outcome of a backup upload.
type BackupWriteResult struct {
	FileID  string
	Created bool
}

// BackupStorage defines the interface for remote backup storage.
type BackupStorage interface {
	// Save uploads the bundle, updating the existing backup file when one exists.
	Save(ctx context.Context, bundle *entity.BackupBundle) (*BackupWriteResult, error)

	// Load downloads the latest bundle. Returns ErrBackupNotFound when none exists.
	Load(ctx context.Context) (*entity.BackupBundle, error)

	// IsAvailable checks if the storage is configured.
	IsAvailable() bool
}
