package adapter

import (
	"context"

	"github.com/volttrack/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence.
type SettingsRepository interface {
	// Get returns the stored settings, or nil when none have been saved.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save creates or replaces the settings.
	Save(ctx context.Context, settings *entity.Settings) error
}

// DataStore groups the repositories that must change together on restore.
type DataStore interface {
	// RestoreSnapshot replaces every record and the settings atomically.
	RestoreSnapshot(ctx context.Context, records []*entity.Record, settings *entity.Settings) error
}
