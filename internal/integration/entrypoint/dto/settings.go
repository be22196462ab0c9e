package dto

import (
	"time"

	"github.com/volttrack/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings update.
type UpdateSettingsRequest struct {
	Currency string `json:"currency" binding:"required"`
}

// SettingsResponse represents the user settings.
type SettingsResponse struct {
	Currency  string     `json:"currency"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	response := SettingsResponse{Currency: s.Currency}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}
