package model

import (
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
)

// SettingsRowID is the primary key of the single settings row.
const SettingsRowID = 1

// SettingsModel represents the settings table in the database.
type SettingsModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false"`
	Currency  string    `gorm:"type:varchar(16);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		Currency:  m.Currency,
		UpdatedAt: m.UpdatedAt,
	}
}

// SettingsFromEntity creates the settings row from a domain Settings entity.
func SettingsFromEntity(s *entity.Settings) *SettingsModel {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	return &SettingsModel{
		ID:        SettingsRowID,
		Currency:  s.Currency,
		UpdatedAt: updatedAt,
	}
}
