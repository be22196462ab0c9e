package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/integration/persistence/model"
)

// alertQueueRepository implements the adapter.AlertQueueRepository interface.
type alertQueueRepository struct {
	db *gorm.DB
}

// NewAlertQueueRepository creates a new alert queue repository instance.
func NewAlertQueueRepository(db *gorm.DB) adapter.AlertQueueRepository {
	return &alertQueueRepository{
		db: db,
	}
}

// Create adds a new alert job to the queue.
func (r *alertQueueRepository) Create(ctx context.Context, job *entity.AlertJob) error {
	alertModel := model.AlertQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(alertModel)
	if result.Error != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to create alert job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *alertQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.AlertJob, error) {
	var models []model.AlertQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.AlertStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.AlertJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// Update saves changes to an alert job.
func (r *alertQueueRepository) Update(ctx context.Context, job *entity.AlertJob) error {
	alertModel := model.AlertQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(alertModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsForAnomaly reports whether an alert was already queued for the anomaly.
func (r *alertQueueRepository) ExistsForAnomaly(ctx context.Context, anomalyKey string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AlertQueueModel{}).
		Where("anomaly_key = ?", anomalyKey).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteOldSentJobs removes sent jobs older than the specified duration.
func (r *alertQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.AlertStatusSent).
		Where("processed_at < ?", cutoff).
		Delete(&model.AlertQueueModel{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
