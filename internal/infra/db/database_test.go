package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/volttrack/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:       DriverSQLite,
		URL:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxIdleConns: 1,
	}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"records", "settings", "alert_queue"} {
		if !database.DB().Migrator().HasTable(table) {
			t.Errorf("table %s missing after migrate", table)
		}
	}
	if !database.HealthCheck() {
		t.Error("health check should pass on an open database")
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}, "test"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
