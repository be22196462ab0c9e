package record

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// UpdateRecordInput represents the input for replacing a record.
type UpdateRecordInput struct {
	ID uuid.UUID
	RecordFields
}

// UpdateRecordOutput represents the output of a record update.
type UpdateRecordOutput struct {
	Record *entity.Record
}

// UpdateRecordUseCase replaces a record wholesale while keeping its ID.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	watch      *anomalyWatch
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository, notifier adapter.AlertNotifier, params valueobject.UsageParams) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		watch:      &anomalyWatch{recordRepo: recordRepo, notifier: notifier, params: params},
	}
}

// Execute performs the update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	existing, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapLookupError(err)
	}

	fields := input.RecordFields
	if fields.Timestamp == nil {
		ts := existing.Timestamp
		fields.Timestamp = &ts
	}

	replacement, err := buildRecord(fields)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	replacement.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, replacement); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, mapLookupError(err)
		}
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordPersistence,
			"failed to update record",
			err,
		)
	}

	slog.Info("Record updated", "record_id", replacement.ID, "kind", replacement.Kind)

	uc.watch.afterSave(ctx, replacement)

	return &UpdateRecordOutput{Record: replacement}, nil
}

// mapLookupError converts repository lookup failures into record errors.
func mapLookupError(err error) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"record not found",
			domainerror.ErrRecordNotFound,
		)
	}
	return domainerror.NewRecordError(
		domainerror.ErrCodeRecordPersistence,
		"failed to load record",
		err,
	)
}
