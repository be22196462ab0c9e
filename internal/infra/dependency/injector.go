// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/volttrack/backend/config"
	"github.com/volttrack/backend/internal/application/adapter"
	"github.com/volttrack/backend/internal/application/usecase/analytics"
	"github.com/volttrack/backend/internal/application/usecase/backup"
	"github.com/volttrack/backend/internal/application/usecase/insight"
	"github.com/volttrack/backend/internal/application/usecase/record"
	"github.com/volttrack/backend/internal/application/usecase/settings"
	"github.com/volttrack/backend/internal/domain/valueobject"
	"github.com/volttrack/backend/internal/infra/server/router"
	"github.com/volttrack/backend/internal/integration/adapters"
	"github.com/volttrack/backend/internal/integration/email"
	"github.com/volttrack/backend/internal/integration/email/templates"
	"github.com/volttrack/backend/internal/integration/entrypoint/controller"
	"github.com/volttrack/backend/internal/integration/entrypoint/middleware"
	"github.com/volttrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	RecordRepo  adapter.RecordRepository

	redisClient *redis.Client
}

// Option overrides a collaborator. Used by tests to plug in fakes.
type Option func(*options)

type options struct {
	backupStorage  adapter.BackupStorage
	insightService adapter.InsightService
	emailSender    adapter.EmailSender
	redisClient    *redis.Client
}

// WithBackupStorage replaces the Google Drive backup storage.
func WithBackupStorage(storage adapter.BackupStorage) Option {
	return func(o *options) { o.backupStorage = storage }
}

// WithInsightService replaces the Gemini insight service.
func WithInsightService(service adapter.InsightService) Option {
	return func(o *options) { o.insightService = service }
}

// WithEmailSender replaces the Resend email sender.
func WithEmailSender(sender adapter.EmailSender) Option {
	return func(o *options) { o.emailSender = sender }
}

// WithRedisClient uses an existing Redis client for the analytics cache.
func WithRedisClient(client *redis.Client) Option {
	return func(o *options) { o.redisClient = client }
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts ...Option) (*Injector, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	params := valueobject.UsageParams{
		AnomalyMultiplier:     cfg.Usage.AnomalyMultiplier,
		ProjectionHorizonDays: cfg.Usage.ProjectionHorizonDays,
	}.Normalize()
	defaultCurrency := cfg.App.DefaultCurrency

	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	dataStore := persistence.NewDataStore(db)
	alertQueueRepo := persistence.NewAlertQueueRepository(db)

	// Create adapters/services
	redisClient := o.redisClient
	if redisClient == nil && cfg.Redis.URL != "" {
		client, err := adapters.NewRedisClient(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}

	var cache adapter.AnalyticsCache
	var cacheHealth controller.HealthChecker
	if redisClient != nil {
		redisCache := adapters.NewRedisCache(redisClient)
		cache = redisCache
		cacheHealth = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisCache.Ping(ctx) == nil
		}
		slog.Info("Analytics cache using Redis")
	} else {
		cache = adapters.NewMemoryCache()
		slog.Info("Analytics cache using in-process memory")
	}

	insightService := o.insightService
	if insightService == nil {
		insightService = adapters.NewGeminiService(adapters.GeminiConfig{
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			Temperature: cfg.Gemini.Temperature,
			Timeout:     cfg.Gemini.Timeout,
		})
	}

	backupStorage := o.backupStorage
	if backupStorage == nil {
		backupStorage = adapters.NewDriveStorage(cfg.Drive.CredentialsFile, cfg.Drive.BackupFileName)
	}

	emailSender, err := newEmailSender(cfg.Email, o.emailSender)
	if err != nil {
		return nil, err
	}
	alertsEnabled := cfg.Email.AlertRecipient != "" && (cfg.Email.ResendAPIKey != "" || o.emailSender != nil)
	alertService := email.NewService(alertQueueRepo, cfg.Email.AlertRecipient, cfg.Email.AppBaseURL, alertsEnabled)

	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		emailWorker = email.NewWorker(alertQueueRepo, emailSender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, alertService, params)
	getRecordUseCase := record.NewGetRecordUseCase(recordRepo)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, alertService, params)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo)
	checkReadingUseCase := record.NewCheckReadingUseCase(recordRepo, params)

	// Create analytics use cases
	source := analytics.NewSource(recordRepo, cache, cfg.Redis.CacheTTL, params)
	getSummaryUseCase := analytics.NewGetSummaryUseCase(source, settingsRepo, defaultCurrency)
	getAnomaliesUseCase := analytics.NewGetAnomaliesUseCase(source)
	getIntervalsUseCase := analytics.NewGetIntervalsUseCase(source)
	getDailyUsageUseCase := analytics.NewGetDailyUsageUseCase(source)
	getMonthViewUseCase := analytics.NewGetMonthViewUseCase(source)
	getChartSeriesUseCase := analytics.NewGetChartSeriesUseCase(source)

	// Create insight use case
	generateInsightUseCase := insight.NewGenerateInsightUseCase(recordRepo, settingsRepo, insightService, defaultCurrency)

	// Create backup use cases
	createBackupUseCase := backup.NewCreateBackupUseCase(recordRepo, settingsRepo, backupStorage, defaultCurrency)
	previewBackupUseCase := backup.NewPreviewBackupUseCase(backupStorage)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(dataStore, backupStorage, defaultCurrency)
	exportDataUseCase := backup.NewExportDataUseCase(recordRepo, settingsRepo, defaultCurrency)
	importDataUseCase := backup.NewImportDataUseCase(dataStore, defaultCurrency)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo, defaultCurrency)
	updateCurrencyUseCase := settings.NewUpdateCurrencyUseCase(settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealth)

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		getRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		checkReadingUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		getSummaryUseCase,
		getAnomaliesUseCase,
		getIntervalsUseCase,
		getDailyUsageUseCase,
		getMonthViewUseCase,
		getChartSeriesUseCase,
	)

	insightController := controller.NewInsightController(generateInsightUseCase)

	backupController := controller.NewBackupController(
		createBackupUseCase,
		previewBackupUseCase,
		restoreBackupUseCase,
		exportDataUseCase,
		importDataUseCase,
	)

	settingsController := controller.NewSettingsController(getSettingsUseCase, updateCurrencyUseCase)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "test" {
		rateLimiter.Disable()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		recordController,
		analyticsController,
		insightController,
		backupController,
		settingsController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		RecordRepo:  recordRepo,
		redisClient: redisClient,
	}, nil
}

// newEmailSender returns the Resend client when an API key is configured and
// a log-only sender otherwise.
func newEmailSender(cfg config.EmailConfig, override adapter.EmailSender) (adapter.EmailSender, error) {
	if override != nil {
		return override, nil
	}
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, alert emails will not be delivered")
		return email.NewLogSender(), nil
	}

	client := email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
	if cfg.ResendBaseURL != "" {
		if err := client.SetBaseURL(cfg.ResendBaseURL); err != nil {
			return nil, fmt.Errorf("invalid RESEND_BASE_URL: %w", err)
		}
	}
	return client, nil
}

// Close releases connections owned by the injector.
func (i *Injector) Close() error {
	if i.redisClient != nil {
		return i.redisClient.Close()
	}
	return nil
}
