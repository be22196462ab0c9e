// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	result := r.db.WithContext(ctx).Create(model.RecordFromEntity(record))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update replaces an existing record.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("id = ?", record.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(recordModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindAll retrieves every record, newest first.
func (r *recordRepository) FindAll(ctx context.Context) ([]*entity.Record, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Order("id DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.Record, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *recordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.RecordModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
