package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/volttrack/backend/internal/domain/entity"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
	getErr   error
	saveErr  error
}

func (f *fakeSettingsRepo) Get(context.Context) (*entity.Settings, error) {
	return f.settings, f.getErr
}

func (f *fakeSettingsRepo) Save(_ context.Context, s *entity.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = s
	return nil
}

func TestGetSettingsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing stored", func(t *testing.T) {
		got, err := NewGetSettingsUseCase(&fakeSettingsRepo{}, "$").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Currency != "$" {
			t.Errorf("currency = %q, want $", got.Currency)
		}
	})

	t.Run("stored value", func(t *testing.T) {
		got, err := NewGetSettingsUseCase(&fakeSettingsRepo{settings: entity.NewSettings("R")}, "$").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Currency != "R" {
			t.Errorf("currency = %q, want R", got.Currency)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		_, err := NewGetSettingsUseCase(&fakeSettingsRepo{getErr: errors.New("db")}, "$").Execute(ctx)
		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) || settingsErr.Code != domainerror.ErrCodeSettingsPersistence {
			t.Errorf("expected %s, got %v", domainerror.ErrCodeSettingsPersistence, err)
		}
	})
}

func TestUpdateCurrencyUseCase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "single symbol", input: "$", want: "$"},
		{name: "three letters", input: "ZAR", want: "ZAR"},
		{name: "trimmed", input: "  R ", want: "R"},
		{name: "multibyte symbol", input: "€", want: "€"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too long", input: "EURO", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSettingsRepo{}
			got, err := NewUpdateCurrencyUseCase(repo).Execute(context.Background(), UpdateCurrencyInput{Currency: tt.input})
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidCurrency) {
					t.Errorf("expected ErrInvalidCurrency, got %v", err)
				}
				if repo.settings != nil {
					t.Error("invalid currency must not be saved")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Currency != tt.want || repo.settings.Currency != tt.want {
				t.Errorf("currency = %q, want %q", got.Currency, tt.want)
			}
		})
	}
}
