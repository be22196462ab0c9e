// Package analytics exposes the usage engine over the stored record set.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

const cacheKeyPrefix = "volttrack:analytics"

// Source loads the record set and memoizes engine results keyed by a content
// fingerprint, so any change to the records produces a new key.
type Source struct {
	recordRepo adapter.RecordRepository
	cache      adapter.AnalyticsCache
	ttl        time.Duration
	params     valueobject.UsageParams
}

// NewSource creates a Source. cache may be nil to disable memoization.
func NewSource(recordRepo adapter.RecordRepository, cache adapter.AnalyticsCache, ttl time.Duration, params valueobject.UsageParams) *Source {
	return &Source{
		recordRepo: recordRepo,
		cache:      cache,
		ttl:        ttl,
		params:     params.Normalize(),
	}
}

// Params returns the engine parameters in use.
func (s *Source) Params() valueobject.UsageParams {
	return s.params
}

func (s *Source) records(ctx context.Context) ([]*entity.Record, error) {
	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsInternal,
			"failed to load records",
			err,
		)
	}
	return records, nil
}

// Fingerprint hashes the full content of the record set. The result does not
// depend on the order of records.
func Fingerprint(records []*entity.Record) string {
	sorted := make([]*entity.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	d := xxhash.New()
	for _, r := range sorted {
		_, _ = fmt.Fprintf(d, "%s|%s|%d|%s|%s|%s|%s|%s\n",
			r.ID,
			r.Kind,
			r.Timestamp.UnixNano(),
			strconv.FormatFloat(r.MeterReading, 'g', -1, 64),
			r.Price.String(),
			r.VAT.String(),
			r.ServiceFee.String(),
			strconv.FormatFloat(r.Units, 'g', -1, 64),
		)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

func (s *Source) cacheKey(view, selector string, records []*entity.Record) string {
	return fmt.Sprintf("%s:%s:%s:m%g:h%d:%s",
		cacheKeyPrefix, view, selector,
		s.params.AnomalyMultiplier, s.params.ProjectionHorizonDays,
		Fingerprint(records),
	)
}

// memoize returns the cached value for key, computing and storing it on a miss.
// Cache failures are logged and fall back to computing.
func memoize[T any](ctx context.Context, s *Source, key string, compute func() T) T {
	if s.cache == nil {
		return compute()
	}

	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		slog.Warn("Analytics cache read failed", "key", key, "error", err)
	} else if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
		slog.Warn("Discarding undecodable analytics cache entry", "key", key)
	}

	value := compute()

	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to encode analytics result", "key", key, "error", err)
		return value
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		slog.Warn("Analytics cache write failed", "key", key, "error", err)
	}

	return value
}
