package record

import (
	"context"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// anomalyWatch queues an alert when a saved record closes a new anomaly.
// Failures are logged and never fail the calling operation.
type anomalyWatch struct {
	recordRepo adapter.RecordRepository
	notifier   adapter.AlertNotifier
	params     valueobject.UsageParams
}

func (w *anomalyWatch) afterSave(ctx context.Context, saved *entity.Record) {
	if w.notifier == nil || !saved.HasPurchasedUnits() {
		return
	}

	records, err := w.recordRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("Skipping anomaly check, failed to load records", "error", err)
		return
	}

	latest := usage.LatestAnomaly(usage.DetectAnomalies(records, w.params))
	if latest == nil || latest.EndID != saved.ID {
		return
	}

	queued, err := w.notifier.QueueAnomalyAlert(ctx, adapter.AnomalyAlertInput{
		AnomalyKey: latest.Key(),
		Start:      latest.Start,
		End:        latest.End,
		Usage:      latest.Usage,
		Average:    latest.Average,
		Threshold:  latest.Threshold,
	})
	if err != nil {
		slog.Warn("Failed to queue anomaly alert", "record_id", saved.ID, "error", err)
		return
	}
	if queued {
		slog.Info("Anomaly alert queued", "record_id", saved.ID, "usage", latest.Usage, "average", latest.Average)
	}
}
