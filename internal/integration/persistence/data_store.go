package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/integration/persistence/model"
)

const restoreBatchSize = 200

// dataStore implements the adapter.DataStore interface.
type dataStore struct {
	db *gorm.DB
}

// NewDataStore creates a new data store instance.
func NewDataStore(db *gorm.DB) adapter.DataStore {
	return &dataStore{
		db: db,
	}
}

// RestoreSnapshot replaces every record and the settings in one transaction.
func (s *dataStore) RestoreSnapshot(ctx context.Context, records []*entity.Record, settings *entity.Settings) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.RecordModel{}).Error; err != nil {
			return err
		}

		if len(records) > 0 {
			models := make([]*model.RecordModel, len(records))
			for i, r := range records {
				models[i] = model.RecordFromEntity(r)
			}
			if err := tx.CreateInBatches(models, restoreBatchSize).Error; err != nil {
				return err
			}
		}

		if settings != nil {
			return saveSettings(tx, settings)
		}
		return nil
	})
}
