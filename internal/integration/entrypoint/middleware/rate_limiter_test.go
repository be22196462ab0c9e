package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/insights", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/backup/restore", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func do(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }
	engine := newLimitedEngine(rl)

	for i := 0; i < 2; i++ {
		if w := do(engine, "/insights"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, w.Code)
		}
	}

	w := do(engine, "/insights")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	if w := do(engine, "/backup/restore"); w.Code != http.StatusOK {
		t.Errorf("limits must be tracked per route, got %d", w.Code)
	}

	now = now.Add(time.Minute + time.Second)
	if w := do(engine, "/insights"); w.Code != http.StatusOK {
		t.Errorf("window should have reset, got %d", w.Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	engine := newLimitedEngine(NewRateLimiterWithConfig(1, time.Minute).Disable())

	for i := 0; i < 3; i++ {
		if w := do(engine, "/insights"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, w.Code)
		}
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(2 * time.Minute)
	rl.allow("b")
	rl.Cleanup()

	if _, ok := rl.entries["a"]; ok {
		t.Error("expired entry should be removed")
	}
	if _, ok := rl.entries["b"]; !ok {
		t.Error("active entry should be kept")
	}
}
