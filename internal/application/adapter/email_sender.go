package adapter

import (
	"context"
	"time"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// AnomalyAlertInput carries the anomaly details rendered into the alert email.
type AnomalyAlertInput struct {
	AnomalyKey string
	Start      time.Time
	End        time.Time
	Usage      float64
	Average    float64
	Threshold  float64
}

// AlertNotifier queues user-facing notifications.
type AlertNotifier interface {
	// QueueAnomalyAlert queues an email about a probable missed purchase.
	// It returns false when the alert was skipped.
	QueueAnomalyAlert(ctx context.Context, input AnomalyAlertInput) (bool, error)
}
