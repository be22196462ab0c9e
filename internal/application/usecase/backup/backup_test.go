package backup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

type memoryStore struct {
	records    []*entity.Record
	settings   *entity.Settings
	restoreErr error
}

func (m *memoryStore) Create(context.Context, *entity.Record) error { return nil }
func (m *memoryStore) Update(context.Context, *entity.Record) error { return nil }
func (m *memoryStore) Delete(context.Context, uuid.UUID) error      { return nil }
func (m *memoryStore) FindByID(context.Context, uuid.UUID) (*entity.Record, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (m *memoryStore) FindAll(context.Context) ([]*entity.Record, error) { return m.records, nil }
func (m *memoryStore) Count(context.Context) (int64, error)             { return int64(len(m.records)), nil }

func (m *memoryStore) Get(context.Context) (*entity.Settings, error) { return m.settings, nil }
func (m *memoryStore) Save(_ context.Context, s *entity.Settings) error {
	m.settings = s
	return nil
}

func (m *memoryStore) RestoreSnapshot(_ context.Context, records []*entity.Record, settings *entity.Settings) error {
	if m.restoreErr != nil {
		return m.restoreErr
	}
	m.records = records
	m.settings = settings
	return nil
}

type fakeStorage struct {
	available bool
	exists    bool
	saved     *entity.BackupBundle
	stored    *entity.BackupBundle
	saveErr   error
	loadErr   error
}

func (f *fakeStorage) IsAvailable() bool { return f.available }

func (f *fakeStorage) Save(_ context.Context, bundle *entity.BackupBundle) (*adapter.BackupWriteResult, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = bundle
	created := !f.exists
	f.exists = true
	return &adapter.BackupWriteResult{FileID: "file-1", Created: created}, nil
}

func (f *fakeStorage) Load(context.Context) (*entity.BackupBundle, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.stored == nil {
		return nil, domainerror.ErrBackupNotFound
	}
	return f.stored, nil
}

var when = time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

func seededStore() *memoryStore {
	return &memoryStore{
		records: []*entity.Record{
			entity.NewPurchase(when, 10025.5, decimal.NewFromInt(50), decimal.RequireFromString("7.5"), decimal.Zero, 25.5),
			entity.NewSpotCheck(when.AddDate(0, 0, 3), 10030),
		},
		settings: entity.NewSettings("R"),
	}
}

func backupCode(t *testing.T, err error) domainerror.BackupErrorCode {
	t.Helper()
	var backupErr *domainerror.BackupError
	if !errors.As(err, &backupErr) {
		t.Fatalf("expected BackupError, got %v", err)
	}
	return backupErr.Code
}

func TestCreateBackupUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("storage not configured", func(t *testing.T) {
		store := seededStore()
		uc := NewCreateBackupUseCase(store, store, &fakeStorage{}, "$")
		_, err := uc.Execute(ctx)
		if code := backupCode(t, err); code != domainerror.ErrCodeBackupStorageUnavailable {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("creates then updates", func(t *testing.T) {
		store := seededStore()
		storage := &fakeStorage{available: true}
		uc := NewCreateBackupUseCase(store, store, storage, "$")

		first, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Message != MessageBackupCreated {
			t.Errorf("message = %q, want %q", first.Message, MessageBackupCreated)
		}
		if first.RecordCount != 2 || storage.saved.Currency != "R" {
			t.Errorf("unexpected bundle: count=%d currency=%q", first.RecordCount, storage.saved.Currency)
		}

		second, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Message != MessageBackupUpdated {
			t.Errorf("message = %q, want %q", second.Message, MessageBackupUpdated)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		store := seededStore()
		uc := NewCreateBackupUseCase(store, store, &fakeStorage{available: true, saveErr: errors.New("quota")}, "$")
		_, err := uc.Execute(ctx)
		if code := backupCode(t, err); code != domainerror.ErrCodeBackupUploadFailed {
			t.Errorf("code = %s", code)
		}
		if !errors.Is(err, domainerror.ErrBackupUploadFailed) {
			t.Error("expected ErrBackupUploadFailed in chain")
		}
	})
}

func TestPreviewBackupUseCase(t *testing.T) {
	stored := entity.NewBackupBundle(seededStore().records, "€")
	out, err := NewPreviewBackupUseCase(&fakeStorage{available: true, stored: stored}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RecordCount != 2 || out.Currency != "€" {
		t.Errorf("unexpected preview: %+v", out)
	}
}

func TestRestoreBackupUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("missing backup", func(t *testing.T) {
		store := seededStore()
		uc := NewRestoreBackupUseCase(store, &fakeStorage{available: true}, "$")
		_, err := uc.Execute(ctx)
		if code := backupCode(t, err); code != domainerror.ErrCodeBackupNotFound {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeBackupNotFound)
		}
		if len(store.records) != 2 {
			t.Error("local data must be untouched")
		}
	})

	t.Run("download failure", func(t *testing.T) {
		uc := NewRestoreBackupUseCase(seededStore(), &fakeStorage{available: true, loadErr: errors.New("network")}, "$")
		_, err := uc.Execute(ctx)
		if code := backupCode(t, err); code != domainerror.ErrCodeBackupDownloadFailed {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("replaces records and currency", func(t *testing.T) {
		store := seededStore()
		remote := entity.NewPurchase(when.AddDate(0, 1, 0), 11000, decimal.NewFromInt(10), decimal.Zero, decimal.Zero, 5)
		uc := NewRestoreBackupUseCase(store, &fakeStorage{
			available: true,
			stored:    entity.NewBackupBundle([]*entity.Record{remote}, "£"),
		}, "$")

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RecordCount != 1 || out.Currency != "£" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(store.records) != 1 || store.records[0].ID != remote.ID {
			t.Error("records were not replaced")
		}
		if store.settings.Currency != "£" {
			t.Errorf("currency = %q, want £", store.settings.Currency)
		}
	})
}

func TestImportDataUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("nil bundle", func(t *testing.T) {
		_, err := NewImportDataUseCase(seededStore(), "$").Execute(ctx, ImportDataInput{})
		if !errors.Is(err, domainerror.ErrMalformedBackup) {
			t.Errorf("expected ErrMalformedBackup, got %v", err)
		}
	})

	t.Run("invalid currency falls back to default", func(t *testing.T) {
		store := seededStore()
		bundle := entity.NewBackupBundle(seededStore().records, "EURO")
		out, err := NewImportDataUseCase(store, "$").Execute(ctx, ImportDataInput{Bundle: bundle})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Currency != "$" {
			t.Errorf("currency = %q, want $", out.Currency)
		}
	})

	t.Run("negative reading is rejected", func(t *testing.T) {
		store := seededStore()
		bad := entity.NewSpotCheck(when, -1)
		_, err := NewImportDataUseCase(store, "$").Execute(ctx, ImportDataInput{
			Bundle: entity.NewBackupBundle([]*entity.Record{bad}, "$"),
		})
		if code := backupCode(t, err); code != domainerror.ErrCodeMalformedBackup {
			t.Errorf("code = %s", code)
		}
		if len(store.records) != 2 {
			t.Error("local data must be untouched")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		store := seededStore()
		store.restoreErr = errors.New("tx aborted")
		_, err := NewImportDataUseCase(store, "$").Execute(ctx, ImportDataInput{
			Bundle: entity.NewBackupBundle(nil, "$"),
		})
		if code := backupCode(t, err); code != domainerror.ErrCodeBackupInternal {
			t.Errorf("code = %s", code)
		}
	})
}

func TestNormalizeRecords(t *testing.T) {
	spot := entity.NewSpotCheck(when, 100)
	spot.Price = decimal.NewFromInt(9)
	spot.Units = 4

	dup := entity.NewPurchase(when, 90, decimal.NewFromInt(1), decimal.Zero, decimal.Zero, 1)
	dupLater := dup.Clone()
	dupLater.MeterReading = 95

	out, err := normalizeRecords([]*entity.Record{spot, nil, dup, dupLater})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2", len(out))
	}
	if !out[0].Price.IsZero() || out[0].Units != 0 {
		t.Error("spot check money and units must be zeroed")
	}
	if out[1].MeterReading != 95 {
		t.Errorf("duplicate should keep the last occurrence, got %v", out[1].MeterReading)
	}
	if spot.Units != 4 {
		t.Error("input records must not be mutated")
	}
}

func TestExportDataUseCase(t *testing.T) {
	store := seededStore()
	store.settings = nil

	bundle, err := NewExportDataUseCase(store, store, "$").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Currency != "$" || len(bundle.Records) != 2 {
		t.Errorf("unexpected bundle: currency=%q records=%d", bundle.Currency, len(bundle.Records))
	}
}
