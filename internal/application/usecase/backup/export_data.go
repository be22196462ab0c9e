package backup

import (
	"context"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
)

// ExportDataUseCase returns the full data set as a backup bundle.
type ExportDataUseCase struct {
	snapshot *snapshotter
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(recordRepo adapter.RecordRepository, settingsRepo adapter.SettingsRepository, defaultCurrency string) *ExportDataUseCase {
	return &ExportDataUseCase{
		snapshot: &snapshotter{
			recordRepo:      recordRepo,
			settingsRepo:    settingsRepo,
			defaultCurrency: defaultCurrency,
		},
	}
}

// Execute builds the bundle.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*entity.BackupBundle, error) {
	return uc.snapshot.take(ctx)
}
