package record

import (
	"context"
	"log/slog"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	RecordFields
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *entity.Record
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	watch      *anomalyWatch
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
// notifier may be nil to disable anomaly alerts.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository, notifier adapter.AlertNotifier, params valueobject.UsageParams) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		watch:      &anomalyWatch{recordRepo: recordRepo, notifier: notifier, params: params},
	}
}

// Execute validates and stores a new record.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	record, err := buildRecord(input.RecordFields)
	if err != nil {
		return nil, err
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordPersistence,
			"failed to create record",
			err,
		)
	}

	slog.Info("Record created", "record_id", record.ID, "kind", record.Kind, "meter_reading", record.MeterReading)

	uc.watch.afterSave(ctx, record)

	return &CreateRecordOutput{Record: record}, nil
}
