package steps

import (
	"context"
	"sync"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// memoryBackupStorage stands in for Google Drive.
type memoryBackupStorage struct {
	mu          sync.Mutex
	unavailable bool
	bundle      *entity.BackupBundle
	saves       int
}

func newMemoryBackupStorage() *memoryBackupStorage {
	return &memoryBackupStorage{}
}

func (s *memoryBackupStorage) Save(_ context.Context, bundle *entity.BackupBundle) (*adapter.BackupWriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*entity.Record, 0, len(bundle.Records))
	for _, r := range bundle.Records {
		records = append(records, r.Clone())
	}
	s.bundle = &entity.BackupBundle{
		Records:     records,
		Currency:    bundle.Currency,
		LastUpdated: bundle.LastUpdated,
	}
	s.saves++

	return &adapter.BackupWriteResult{FileID: "backup-file-1", Created: s.saves == 1}, nil
}

func (s *memoryBackupStorage) Load(_ context.Context) (*entity.BackupBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bundle == nil {
		return nil, domainerror.ErrBackupNotFound
	}
	return s.bundle, nil
}

func (s *memoryBackupStorage) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.unavailable
}

func (s *memoryBackupStorage) setUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = true
}

// stubInsightService stands in for Gemini. It is unavailable until configured.
type stubInsightService struct {
	mu       sync.Mutex
	insight  *entity.Insight
	requests []*adapter.InsightRequest
}

func (s *stubInsightService) Analyze(_ context.Context, request *adapter.InsightRequest) (*entity.Insight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.insight == nil {
		return nil, domainerror.ErrInsightServiceUnavailable
	}
	s.requests = append(s.requests, request)
	return s.insight, nil
}

func (s *stubInsightService) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insight != nil
}

func (s *stubInsightService) respondWith(insight *entity.Insight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insight = insight
}

func (s *stubInsightService) lastRequest() *adapter.InsightRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
