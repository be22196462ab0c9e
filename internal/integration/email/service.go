// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// Service queues anomaly alert emails.
type Service struct {
	queue      adapter.AlertQueueRepository
	recipient  string
	appBaseURL string
	enabled    bool
}

// NewService creates a new email service. Alerts are skipped when enabled is
// false or no recipient is configured.
func NewService(queue adapter.AlertQueueRepository, recipient, appBaseURL string, enabled bool) *Service {
	return &Service{
		queue:      queue,
		recipient:  recipient,
		appBaseURL: appBaseURL,
		enabled:    enabled && recipient != "",
	}
}

// QueueAnomalyAlert queues an alert about a probable missed purchase. Each
// anomaly is alerted at most once.
func (s *Service) QueueAnomalyAlert(ctx context.Context, input adapter.AnomalyAlertInput) (bool, error) {
	if !s.enabled {
		slog.Debug("Anomaly alerts disabled, skipping", "anomaly", input.AnomalyKey)
		return false, nil
	}

	exists, err := s.queue.ExistsForAnomaly(ctx, input.AnomalyKey)
	if err != nil {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to check alert queue",
			err,
		)
	}
	if exists {
		return false, nil
	}

	subject := "Possible missed purchase - VoltTrack"

	templateData := map[string]interface{}{
		"start_date": valueobject.DateKeyOf(input.Start).String(),
		"end_date":   valueobject.DateKeyOf(input.End).String(),
		"usage":      fmt.Sprintf("%.1f", input.Usage),
		"average":    fmt.Sprintf("%.1f", input.Average),
		"threshold":  fmt.Sprintf("%.1f", input.Threshold),
		"app_url":    s.appBaseURL,
	}

	job := entity.NewAlertJob(
		entity.TemplateAnomalyAlert,
		input.AnomalyKey,
		s.recipient,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue anomaly alert email",
			err,
		)
	}

	slog.Info("Anomaly alert queued", "job_id", job.ID, "anomaly", input.AnomalyKey)
	return true, nil
}

// Ensure Service implements adapter.AlertNotifier.
var _ adapter.AlertNotifier = (*Service)(nil)
