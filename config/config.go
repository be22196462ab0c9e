// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Usage    UsageConfig
	Gemini   GeminiConfig
	Drive    DriveConfig
	Email    EmailConfig
	App      AppConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds database configuration.
// Driver is "sqlite" (embedded file) or "postgres".
type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration for the analytics cache.
// An empty URL selects the in-process cache.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	CacheTTL time.Duration
}

// UsageConfig holds the usage engine tunables.
type UsageConfig struct {
	AnomalyMultiplier     float64
	ProjectionHorizonDays int
}

// GeminiConfig holds the AI insight configuration.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// DriveConfig holds Google Drive backup configuration.
type DriveConfig struct {
	CredentialsFile string
	BackupFileName  string
}

// EmailConfig holds anomaly alert email configuration.
type EmailConfig struct {
	ResendAPIKey   string
	ResendBaseURL  string
	FromName       string
	FromEmail      string
	AlertRecipient string
	AppBaseURL     string
	WorkerEnabled  bool
	PollInterval   time.Duration
	BatchSize      int
}

// AppConfig holds application-level preferences.
type AppConfig struct {
	DefaultCurrency string
	SeedSampleData  bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			URL:             getEnv("DATABASE_URL", "volttrack.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: getEnvAsDuration("ANALYTICS_CACHE_TTL", 5*time.Minute),
		},
		Usage: UsageConfig{
			AnomalyMultiplier:     getEnvAsFloat("ANOMALY_MULTIPLIER", 1.8),
			ProjectionHorizonDays: getEnvAsInt("PROJECTION_HORIZON_DAYS", 90),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: float32(getEnvAsFloat("GEMINI_TEMPERATURE", 0.4)),
			Timeout:     getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
		},
		Drive: DriveConfig{
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
			BackupFileName:  getEnv("BACKUP_FILE_NAME", "volttrack_data.json"),
		},
		Email: EmailConfig{
			ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
			ResendBaseURL:  getEnv("RESEND_BASE_URL", ""),
			FromName:       getEnv("RESEND_FROM_NAME", "VoltTrack"),
			FromEmail:      getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AlertRecipient: getEnv("ALERT_RECIPIENT", ""),
			AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:5173"),
			WorkerEnabled:  getEnvAsBool("EMAIL_WORKER_ENABLED", true),
			PollInterval:   getEnvAsDuration("EMAIL_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:      getEnvAsInt("EMAIL_WORKER_BATCH_SIZE", 10),
		},
		App: AppConfig{
			DefaultCurrency: getEnv("DEFAULT_CURRENCY", "$"),
			SeedSampleData:  getEnvAsBool("SEED_SAMPLE_DATA", false),
		},
	}
}

// AlertsEnabled reports whether anomaly alerts can be delivered.
func (c EmailConfig) AlertsEnabled() bool {
	return c.ResendAPIKey != "" && c.AlertRecipient != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
