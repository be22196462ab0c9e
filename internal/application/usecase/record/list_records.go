package record

import (
	"context"
	"sort"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// ListRecordsOutput contains every record, newest first.
type ListRecordsOutput struct {
	Records []*entity.Record
}

// ListRecordsUseCase returns the full record history.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{recordRepo: recordRepo}
}

// Execute lists the records.
func (uc *ListRecordsUseCase) Execute(ctx context.Context) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordPersistence,
			"failed to list records",
			err,
		)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return &ListRecordsOutput{Records: records}, nil
}
