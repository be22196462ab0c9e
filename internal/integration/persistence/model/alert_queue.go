package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/domain/entity"
)

// AlertQueueModel represents the alert_queue table in the database.
type AlertQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Template       string       `gorm:"type:varchar(50);not null"`
	AnomalyKey     string       `gorm:"type:varchar(100);not null;index"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	Subject        string       `gorm:"type:varchar(500);not null"`
	TemplateData   string       `gorm:"type:text;not null"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int          `gorm:"not null;default:0"`
	MaxAttempts    int          `gorm:"not null;default:3"`
	LastError      string       `gorm:"type:text"`
	ProviderID     string       `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
	ScheduledAt    time.Time    `gorm:"not null"`
	ProcessedAt    sql.NullTime
}

// TableName returns the table name for the AlertQueueModel.
func (AlertQueueModel) TableName() string {
	return "alert_queue"
}

// ToEntity converts an AlertQueueModel to a domain AlertJob entity.
func (m *AlertQueueModel) ToEntity() *entity.AlertJob {
	// Parse template data from JSON
	var templateData map[string]interface{}
	if m.TemplateData != "" {
		if err := json.Unmarshal([]byte(m.TemplateData), &templateData); err != nil {
			slog.Warn("Failed to unmarshal alert template data", "error", err, "id", m.ID)
		}
	}
	if templateData == nil {
		templateData = make(map[string]interface{})
	}

	// Convert sql.NullTime to *time.Time
	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.AlertJob{
		ID:             m.ID,
		Template:       entity.AlertTemplate(m.Template),
		AnomalyKey:     m.AnomalyKey,
		RecipientEmail: m.RecipientEmail,
		Subject:        m.Subject,
		TemplateData:   templateData,
		Status:         entity.AlertStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}

// AlertQueueModelFromEntity creates an AlertQueueModel from a domain AlertJob entity.
func AlertQueueModelFromEntity(job *entity.AlertJob) *AlertQueueModel {
	templateData := job.TemplateData
	if templateData == nil {
		templateData = map[string]interface{}{}
	}
	templateDataJSON, err := json.Marshal(templateData)
	if err != nil {
		slog.Error("Failed to marshal alert template data", "error", err, "job_id", job.ID)
		templateDataJSON = []byte("{}")
	}

	// Convert *time.Time to sql.NullTime
	var processedAt sql.NullTime
	if job.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}

	return &AlertQueueModel{
		ID:             job.ID,
		Template:       string(job.Template),
		AnomalyKey:     job.AnomalyKey,
		RecipientEmail: job.RecipientEmail,
		Subject:        job.Subject,
		TemplateData:   string(templateDataJSON),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}
