// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/volttrack/backend/config"
	"github.com/volttrack/backend/internal/infra/dependency"
	"github.com/volttrack/backend/internal/integration/persistence/model"
	"github.com/volttrack/backend/test/integration/mock"
)

const (
	resendEmailsPath = "/emails"
	alertRecipient   = "owner@example.com"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	remembered     map[string]string

	// Collaborators
	injector *dependency.Injector
	db       *mock.Db
	storage  *memoryBackupStorage
	insight  *stubInsightService
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

var (
	resendInit sync.Once
	resendMock *mock.ApiMock
)

// emailProvider returns the shared Resend API mock.
func emailProvider() *mock.ApiMock {
	resendInit.Do(func() {
		resendMock = mock.NewApiServer()
		resendMock.Start()
	})
	return resendMock
}

func testDatabase() *mock.Db {
	return mock.NewDb("volttrack", map[string]any{
		"records":     &model.RecordModel{},
		"settings":    &model.SettingsModel{},
		"alert_queue": &model.AlertQueueModel{},
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		emailProvider()
		testDatabase()
		mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		emailProvider().Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
	registerCollaboratorSteps(ctx)
}

// newTestContext resets shared state and wires a fresh application against it.
// The injector is not closed afterwards since the Redis client is shared.
func newTestContext() (*TestContext, error) {
	db := testDatabase()
	if err := db.ClearDB(); err != nil {
		return nil, fmt.Errorf("failed to clear database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	provider := emailProvider()
	provider.ClearResponses("POST", resendEmailsPath)
	provider.SetResponse(-1, "POST", resendEmailsPath, http.StatusOK, map[string]any{"id": "email-test-id"})

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Redis.URL = ""
	cfg.App.DefaultCurrency = "$"
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.ResendBaseURL = provider.GetUrl()
	cfg.Email.AlertRecipient = alertRecipient
	cfg.Email.WorkerEnabled = true

	storage := newMemoryBackupStorage()
	insight := &stubInsightService{}

	injector, err := dependency.NewInjector(cfg, db.DbConn,
		dependency.WithRedisClient(redisClient),
		dependency.WithBackupStorage(storage),
		dependency.WithInsightService(insight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to wire application: %w", err)
	}

	return &TestContext{
		server:         httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
		requestHeaders: make(map[string]string),
		remembered:     make(map[string]string),
		injector:       injector,
		db:             db,
		storage:        storage,
		insight:        insight,
	}, nil
}
