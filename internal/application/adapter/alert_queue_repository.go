package adapter

import (
	"context"

	"github.com/volttrack/backend/internal/domain/entity"
)

// AlertQueueRepository defines the interface for alert queue persistence operations.
type AlertQueueRepository interface {
	// Create adds a new alert job to the queue.
	Create(ctx context.Context, job *entity.AlertJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.AlertJob, error)

	// Update saves changes to an alert job.
	Update(ctx context.Context, job *entity.AlertJob) error

	// ExistsForAnomaly reports whether an alert was already queued for the anomaly.
	ExistsForAnomaly(ctx context.Context, anomalyKey string) (bool, error)

	// DeleteOldSentJobs removes sent jobs older than the given number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
