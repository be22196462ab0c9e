package adapter

import (
	"context"
	"time"
)

// AnalyticsCache stores serialized analytics results keyed by content fingerprint.
type AnalyticsCache interface {
	// Get returns the cached payload and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
