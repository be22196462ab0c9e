package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the stored settings, or nil when none have been saved.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Where("id = ?", model.SettingsRowID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save upserts the settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	return saveSettings(r.db.WithContext(ctx), settings)
}

func saveSettings(db *gorm.DB, settings *entity.Settings) error {
	result := db.Save(model.SettingsFromEntity(settings))
	if result.Error != nil {
		return result.Error
	}
	return nil
}
