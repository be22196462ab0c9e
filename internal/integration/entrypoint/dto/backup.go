package dto

import (
	"time"

	"github.com/volttrack/backend/internal/application/usecase/backup"
)

// BackupResponse represents the outcome of a cloud backup.
type BackupResponse struct {
	Message     string    `json:"message"`
	FileID      string    `json:"file_id"`
	RecordCount int       `json:"record_count"`
	LastUpdated time.Time `json:"last_updated"`
}

// BackupPreviewResponse describes the stored backup without restoring it.
type BackupPreviewResponse struct {
	RecordCount int       `json:"record_count"`
	Currency    string    `json:"currency"`
	LastUpdated time.Time `json:"last_updated"`
}

// RestoreResponse represents the outcome of a restore or import.
type RestoreResponse struct {
	RecordCount int    `json:"record_count"`
	Currency    string `json:"currency"`
}

// ToBackupResponse converts the backup output to its DTO.
func ToBackupResponse(output *backup.CreateBackupOutput) BackupResponse {
	return BackupResponse{
		Message:     output.Message,
		FileID:      output.FileID,
		RecordCount: output.RecordCount,
		LastUpdated: output.LastUpdated,
	}
}

// ToBackupPreviewResponse converts the preview output to its DTO.
func ToBackupPreviewResponse(output *backup.PreviewBackupOutput) BackupPreviewResponse {
	return BackupPreviewResponse{
		RecordCount: output.RecordCount,
		Currency:    output.Currency,
		LastUpdated: output.LastUpdated,
	}
}
