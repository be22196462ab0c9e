package dependency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/volttrack/backend/config"
	"github.com/volttrack/backend/internal/infra/db"
)

func newTestInjector(t *testing.T, opts ...Option) (*Injector, *gin.Engine) {
	t.Helper()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.Driver = db.DriverSQLite
	cfg.Database.URL = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	cfg.Redis.URL = ""
	cfg.Email.WorkerEnabled = false

	database, err := db.NewConnection(&cfg.Database, cfg.Server.Environment)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	inj, err := NewInjector(cfg, database.DB(), opts...)
	if err != nil {
		t.Fatalf("injector: %v", err)
	}
	t.Cleanup(func() { _ = inj.Close() })

	return inj, inj.Router.Setup(cfg.Server.Environment)
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestInjector_RoutesWired(t *testing.T) {
	_, engine := newTestInjector(t)

	if w := serve(engine, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health: status %d body %s", w.Code, w.Body.String())
	}

	w := serve(engine, http.MethodPost, "/api/v1/records",
		`{"timestamp":"2024-01-01","meter_reading":100,"price":"100","vat":"15","units":50}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}

	w = serve(engine, http.MethodGet, "/api/v1/analytics/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d body %s", w.Code, w.Body.String())
	}
	var summary struct {
		RecordCount int    `json:"record_count"`
		Currency    string `json:"currency"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.RecordCount != 1 || summary.Currency != "$" {
		t.Errorf("unexpected summary: %+v", summary)
	}

	if w := serve(engine, http.MethodPost, "/api/v1/insights", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("insights without api key: status %d", w.Code)
	}
	if w := serve(engine, http.MethodGet, "/api/v1/backup", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("backup without credentials: status %d", w.Code)
	}
}

func TestInjector_RedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	_, engine := newTestInjector(t, WithRedisClient(client))

	if w := serve(engine, http.MethodGet, "/api/v1/analytics/anomalies", ""); w.Code != http.StatusOK {
		t.Fatalf("anomalies: status %d", w.Code)
	}
	if len(server.Keys()) == 0 {
		t.Error("expected analytics result to be cached in redis")
	}

	w := serve(engine, http.MethodGet, "/health", "")
	if !strings.Contains(w.Body.String(), `"cache":"connected"`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestSeedSampleData(t *testing.T) {
	inj, _ := newTestInjector(t)
	ctx := context.Background()

	created, err := SeedSampleData(ctx, inj.RecordRepo)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != 3 {
		t.Fatalf("created = %d, want 3", created)
	}

	created, err = SeedSampleData(ctx, inj.RecordRepo)
	if err != nil || created != 0 {
		t.Errorf("second seed should be a no-op, got %d, %v", created, err)
	}
}
