package record

import (
	"context"

	"github.com/volttrack/backend/internal/application/adapter"
	domainerror "github.com/volttrack/backend/internal/domain/error"
	"github.com/volttrack/backend/internal/domain/usage"
	"github.com/volttrack/backend/internal/domain/valueobject"
)

// CheckReadingInput carries a meter reading that has not been saved yet.
type CheckReadingInput struct {
	MeterReading float64
}

// CheckReadingOutput holds the warning, nil when the reading looks normal.
type CheckReadingOutput struct {
	Warning *usage.ReadingWarning
}

// CheckReadingUseCase warns when a new reading implies unusually high usage.
type CheckReadingUseCase struct {
	recordRepo adapter.RecordRepository
	params     valueobject.UsageParams
}

// NewCheckReadingUseCase creates a new CheckReadingUseCase instance.
func NewCheckReadingUseCase(recordRepo adapter.RecordRepository, params valueobject.UsageParams) *CheckReadingUseCase {
	return &CheckReadingUseCase{recordRepo: recordRepo, params: params}
}

// Execute evaluates the reading against the history.
func (uc *CheckReadingUseCase) Execute(ctx context.Context, input CheckReadingInput) (*CheckReadingOutput, error) {
	if input.MeterReading < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeMeterReading,
			"meter reading must not be negative",
			domainerror.ErrNegativeMeterReading,
		)
	}

	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordPersistence,
			"failed to load records",
			err,
		)
	}

	return &CheckReadingOutput{
		Warning: usage.CheckReading(records, input.MeterReading, uc.params),
	}, nil
}
