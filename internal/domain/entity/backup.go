package entity

import "time"

// BackupBundle is the document exchanged with backup storage.
type BackupBundle struct {
	Records     []*Record
	Currency    string
	LastUpdated time.Time
}

// NewBackupBundle snapshots the given records and currency.
func NewBackupBundle(records []*Record, currency string) *BackupBundle {
	return &BackupBundle{
		Records:     records,
		Currency:    currency,
		LastUpdated: time.Now().UTC(),
	}
}
