package dto

import "github.com/volttrack/backend/internal/application/usecase/insight"

// InsightResponse represents an AI-generated usage insight.
type InsightResponse struct {
	Summary         string   `json:"summary"`
	Trend           string   `json:"trend"`
	Recommendations []string `json:"recommendations"`
	PurchaseCount   int      `json:"purchase_count"`
}

// ProcessingErrorResponse represents a failed insight generation.
type ProcessingErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ToInsightResponse converts the insight output to its DTO.
func ToInsightResponse(output *insight.GenerateInsightOutput) InsightResponse {
	recommendations := output.Insight.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return InsightResponse{
		Summary:         output.Insight.Summary,
		Trend:           output.Insight.Trend,
		Recommendations: recommendations,
		PurchaseCount:   output.PurchaseCount,
	}
}
