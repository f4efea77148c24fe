package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/config"
	"github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		MetricsEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
		TrendDefaultMonths: 6,
		RecomputeWorkers:   2,
	}
}

func TestNewContainer_MemoryStorage(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	defer c.Close()

	result, updated, err := c.Handicaps.UpdateFromRounds(context.Background(), memory.UserIDDemoGolfer)
	if err != nil {
		t.Fatalf("update handicap: %v", err)
	}
	if !updated {
		t.Fatalf("expected demo golfer to have enough rounds for an index")
	}
	current, ok, err := c.Handicaps.GetCurrent(context.Background(), memory.UserIDDemoGolfer)
	if err != nil || !ok {
		t.Fatalf("get current: ok=%v err=%v", ok, err)
	}
	if current != result.HandicapIndex {
		t.Fatalf("cached current %v does not match recorded %v", current, result.HandicapIndex)
	}
}

func TestNewContainer_RejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"

	if _, err := NewContainer(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestNewHTTPServer_ServesMetricsWhenEnabled(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	srv, err := NewHTTPServer(c)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to be served, got %d", rec.Code)
	}
}

func TestNewHTTPServer_NoMetricsRouteWhenDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false
	c, err := NewContainer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	srv, err := NewHTTPServer(c)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for /metrics, got %d", rec.Code)
	}
}
