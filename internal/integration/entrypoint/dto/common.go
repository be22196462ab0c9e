// Package dto defines data transfer objects for API requests and responses.
package dto

import "math"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
