package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/integration/email/templates"
)

// fakeSender records delivered emails or fails with the configured error.
type fakeSender struct {
	sent []adapter.SendEmailInput
	fail error
}

func (f *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.fail != nil {
		return nil, classifySendError(f.fail)
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("fake-%d", len(f.sent))}, nil
}

type memoryQueue struct {
	mu   sync.Mutex
	jobs []*entity.AlertJob
}

func (q *memoryQueue) Create(_ context.Context, job *entity.AlertJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.AlertJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now().UTC()
	var out []*entity.AlertJob
	for _, j := range q.jobs {
		if j.Status == entity.AlertStatusPending && !j.ScheduledAt.After(now) {
			out = append(out, j)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(context.Context, *entity.AlertJob) error { return nil }

func (q *memoryQueue) ExistsForAnomaly(_ context.Context, key string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, j := range q.jobs {
		if j.AnomalyKey == key {
			return true, nil
		}
	}
	return false, nil
}

func (q *memoryQueue) DeleteOldSentJobs(context.Context, int) (int64, error) { return 0, nil }

func anomalyInput() adapter.AnomalyAlertInput {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	return adapter.AnomalyAlertInput{
		AnomalyKey: "a:b",
		Start:      start,
		End:        start.AddDate(0, 0, 7),
		Usage:      120,
		Average:    50,
		Threshold:  90,
	}
}

func TestService_QueueAnomalyAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		queue := &memoryQueue{}
		queued, err := NewService(queue, "me@example.com", "", false).QueueAnomalyAlert(ctx, anomalyInput())
		if err != nil || queued {
			t.Fatalf("queued=%v err=%v, want skipped", queued, err)
		}
		if len(queue.jobs) != 0 {
			t.Error("no job should be queued")
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		queued, _ := NewService(&memoryQueue{}, "", "", true).QueueAnomalyAlert(ctx, anomalyInput())
		if queued {
			t.Error("alert without recipient should be skipped")
		}
	})

	t.Run("queues once per anomaly", func(t *testing.T) {
		queue := &memoryQueue{}
		svc := NewService(queue, "me@example.com", "http://localhost:5173", true)

		first, err := svc.QueueAnomalyAlert(ctx, anomalyInput())
		if err != nil || !first {
			t.Fatalf("first queued=%v err=%v", first, err)
		}
		second, err := svc.QueueAnomalyAlert(ctx, anomalyInput())
		if err != nil || second {
			t.Fatalf("second queued=%v err=%v, want deduplicated", second, err)
		}
		if len(queue.jobs) != 1 {
			t.Fatalf("jobs = %d, want 1", len(queue.jobs))
		}

		job := queue.jobs[0]
		if job.Template != entity.TemplateAnomalyAlert || job.RecipientEmail != "me@example.com" {
			t.Errorf("unexpected job: %+v", job)
		}
		if job.TemplateData["start_date"] != "2024-05-01" || job.TemplateData["usage"] != "120.0" {
			t.Errorf("unexpected template data: %v", job.TemplateData)
		}
	})
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	t.Run("sends rendered alert", func(t *testing.T) {
		queue := &memoryQueue{}
		if _, err := NewService(queue, "me@example.com", "http://app", true).QueueAnomalyAlert(ctx, anomalyInput()); err != nil {
			t.Fatalf("queue: %v", err)
		}
		sender := &fakeSender{}

		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("sent = %d, want 1", len(sender.sent))
		}
		sent := sender.sent[0]
		if !strings.Contains(sent.HTML, "2024-05-08") || !strings.Contains(sent.Text, "120.0 kWh") {
			t.Errorf("rendered content missing anomaly details")
		}
		if queue.jobs[0].Status != entity.AlertStatusSent || queue.jobs[0].ProviderID != "fake-1" {
			t.Errorf("job status = %s provider = %s", queue.jobs[0].Status, queue.jobs[0].ProviderID)
		}
	})

	t.Run("temporary failure reschedules", func(t *testing.T) {
		queue := &memoryQueue{}
		_, _ = NewService(queue, "me@example.com", "", true).QueueAnomalyAlert(ctx, anomalyInput())
		sender := &fakeSender{fail: errors.New("503 service unavailable")}

		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		job := queue.jobs[0]
		if job.Status != entity.AlertStatusPending || job.Attempts != 1 {
			t.Errorf("status = %s attempts = %d, want pending/1", job.Status, job.Attempts)
		}
		if !job.ScheduledAt.After(time.Now().UTC()) {
			t.Error("retry should be scheduled in the future")
		}
	})

	t.Run("permanent failure", func(t *testing.T) {
		queue := &memoryQueue{}
		_, _ = NewService(queue, "me@example.com", "", true).QueueAnomalyAlert(ctx, anomalyInput())
		sender := &fakeSender{fail: errors.New("422 validation error")}

		NewWorker(queue, sender, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if queue.jobs[0].Status != entity.AlertStatusFailed {
			t.Errorf("status = %s, want failed", queue.jobs[0].Status)
		}
	})

	t.Run("unknown template is permanent", func(t *testing.T) {
		queue := &memoryQueue{}
		_ = queue.Create(ctx, entity.NewAlertJob("weekly_digest", "x", "me@example.com", "s", nil))

		NewWorker(queue, &fakeSender{}, renderer, DefaultWorkerConfig()).ProcessNow(ctx)

		if queue.jobs[0].Status != entity.AlertStatusFailed {
			t.Errorf("status = %s, want failed", queue.jobs[0].Status)
		}
	})
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"401 unauthorized", true},
		{"422 validation error", true},
		{"429 too many requests", false},
		{"500 internal server error", false},
	}
	for _, tt := range tests {
		if got := isPermanentError(errors.New(tt.err)); got != tt.want {
			t.Errorf("isPermanentError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestLogSender(t *testing.T) {
	sender := NewLogSender()
	ctx := context.Background()

	for _, want := range []string{"log-1", "log-2"} {
		result, err := sender.Send(ctx, adapter.SendEmailInput{To: "me@example.com", Subject: "s"})
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if result.ProviderID != want {
			t.Errorf("ProviderID = %s, want %s", result.ProviderID, want)
		}
	}
}
