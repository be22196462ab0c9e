package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Usage.AnomalyMultiplier != 1.8 {
		t.Errorf("Usage.AnomalyMultiplier = %v, want 1.8", cfg.Usage.AnomalyMultiplier)
	}
	if cfg.Usage.ProjectionHorizonDays != 90 {
		t.Errorf("Usage.ProjectionHorizonDays = %d, want 90", cfg.Usage.ProjectionHorizonDays)
	}
	if cfg.Drive.BackupFileName != "volttrack_data.json" {
		t.Errorf("Drive.BackupFileName = %q", cfg.Drive.BackupFileName)
	}
	if cfg.App.DefaultCurrency != "$" {
		t.Errorf("App.DefaultCurrency = %q, want $", cfg.App.DefaultCurrency)
	}
	if cfg.Email.AlertsEnabled() {
		t.Error("alerts must be disabled without an API key and recipient")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("ANOMALY_MULTIPLIER", "2.5")
	t.Setenv("PROJECTION_HORIZON_DAYS", "30")
	t.Setenv("ANALYTICS_CACHE_TTL", "1m")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("ALERT_RECIPIENT", "me@example.com")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Usage.AnomalyMultiplier != 2.5 {
		t.Errorf("Usage.AnomalyMultiplier = %v, want 2.5", cfg.Usage.AnomalyMultiplier)
	}
	if cfg.Usage.ProjectionHorizonDays != 30 {
		t.Errorf("Usage.ProjectionHorizonDays = %d, want 30", cfg.Usage.ProjectionHorizonDays)
	}
	if cfg.Redis.CacheTTL != time.Minute {
		t.Errorf("Redis.CacheTTL = %v, want 1m", cfg.Redis.CacheTTL)
	}
	if !cfg.Email.AlertsEnabled() {
		t.Error("alerts must be enabled with an API key and recipient")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("invalid SERVER_PORT must fall back to 8080, got %d", cfg.Server.Port)
	}
}
