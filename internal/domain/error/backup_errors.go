package error

import "errors"

// Backup domain errors.
var (
	// ErrBackupStorageUnavailable is returned when no cloud credentials are configured.
	ErrBackupStorageUnavailable = errors.New("backup storage is not configured")

	// ErrBackupNotFound is returned when no backup file exists yet.
	ErrBackupNotFound = errors.New("no backup file found")

	// ErrBackupUploadFailed is returned when writing the backup fails.
	ErrBackupUploadFailed = errors.New("failed to upload backup")

	// ErrBackupDownloadFailed is returned when reading the backup fails.
	ErrBackupDownloadFailed = errors.New("failed to download backup")

	// ErrMalformedBackup is returned when a bundle cannot be decoded or holds invalid records.
	ErrMalformedBackup = errors.New("backup bundle is malformed")
)

// BackupErrorCode defines error codes for backup errors.
// Format: BKP-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Availability errors (01XXXX)
	ErrCodeBackupStorageUnavailable BackupErrorCode = "BKP-010001"
	ErrCodeBackupNotFound           BackupErrorCode = "BKP-010002"

	// Transfer errors (02XXXX)
	ErrCodeBackupUploadFailed   BackupErrorCode = "BKP-020001"
	ErrCodeBackupDownloadFailed BackupErrorCode = "BKP-020002"

	// Validation errors (03XXXX)
	ErrCodeMalformedBackup BackupErrorCode = "BKP-030001"

	// Internal errors (99XXXX)
	ErrCodeBackupInternal BackupErrorCode = "BKP-990001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
