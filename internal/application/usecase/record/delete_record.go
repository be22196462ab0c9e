package record

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/application/adapter"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	ID uuid.UUID
}

// DeleteRecordUseCase handles record deletion.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{recordRepo: recordRepo}
}

// Execute deletes the record.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	if err := uc.recordRepo.Delete(ctx, input.ID); err != nil {
		return mapLookupError(err)
	}

	slog.Info("Record deleted", "record_id", input.ID)
	return nil
}
