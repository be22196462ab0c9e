package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
)

// GetRecordInput represents the input for fetching a record.
type GetRecordInput struct {
	ID uuid.UUID
}

// GetRecordOutput represents the fetched record.
type GetRecordOutput struct {
	Record *entity.Record
}

// GetRecordUseCase fetches a single record.
type GetRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetRecordUseCase creates a new GetRecordUseCase instance.
func NewGetRecordUseCase(recordRepo adapter.RecordRepository) *GetRecordUseCase {
	return &GetRecordUseCase{recordRepo: recordRepo}
}

// Execute fetches the record.
func (uc *GetRecordUseCase) Execute(ctx context.Context, input GetRecordInput) (*GetRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return &GetRecordOutput{Record: record}, nil
}
