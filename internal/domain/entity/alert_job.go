package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus represents the delivery state of a queued alert.
type AlertStatus string

const (
	AlertStatusPending    AlertStatus = "pending"
	AlertStatusProcessing AlertStatus = "processing"
	AlertStatusSent       AlertStatus = "sent"
	AlertStatusFailed     AlertStatus = "failed"
)

// AlertTemplate names the template used to render an alert.
type AlertTemplate string

const (
	TemplateAnomalyAlert AlertTemplate = "anomaly_alert"
)

// AlertJob is an outgoing notification waiting in the delivery queue.
type AlertJob struct {
	ID             uuid.UUID
	Template       AlertTemplate
	AnomalyKey     string
	RecipientEmail string
	Subject        string
	TemplateData   map[string]interface{}
	Status         AlertStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewAlertJob creates a pending alert scheduled for immediate delivery.
func NewAlertJob(template AlertTemplate, anomalyKey, recipient, subject string, data map[string]interface{}) *AlertJob {
	now := time.Now().UTC()
	return &AlertJob{
		ID:             uuid.New(),
		Template:       template,
		AnomalyKey:     anomalyKey,
		RecipientEmail: recipient,
		Subject:        subject,
		TemplateData:   data,
		Status:         AlertStatusPending,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as picked up by a worker.
func (j *AlertJob) MarkProcessing() {
	j.Status = AlertStatusProcessing
}

// MarkSent records a successful delivery.
func (j *AlertJob) MarkSent(providerID string) {
	j.Status = AlertStatusSent
	j.ProviderID = providerID
	now := time.Now().UTC()
	j.ProcessedAt = &now
}

// MarkFailed records a failed attempt and reschedules it unless the failure
// is permanent or attempts are exhausted.
func (j *AlertJob) MarkFailed(err error, permanent bool) {
	j.Attempts++
	j.LastError = err.Error()

	if permanent || j.Attempts >= j.MaxAttempts {
		j.Status = AlertStatusFailed
		now := time.Now().UTC()
		j.ProcessedAt = &now
		return
	}

	j.Status = AlertStatusPending
	j.ScheduledAt = j.nextRetry()
}

// Retry delays: immediate, 1min, 5min.
func (j *AlertJob) nextRetry() time.Time {
	delays := []time.Duration{0, time.Minute, 5 * time.Minute}
	if j.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[j.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true while attempts remain.
func (j *AlertJob) CanRetry() bool {
	return j.Attempts < j.MaxAttempts
}
