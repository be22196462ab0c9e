package adapter

import (
	"context"

	"github.com/volttrack/backend/internal/domain/entity"
)

// InsightRequest is the digest sent to the AI collaborator.
type InsightRequest struct {
	Purchases []entity.InsightDigestEntry
	Currency  string
}

// InsightService defines the interface for AI-generated usage insights.
type InsightService interface {
	// Analyze returns a summary, trend and recommendations for the digest.
	Analyze(ctx context.Context, request *InsightRequest) (*entity.Insight, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
