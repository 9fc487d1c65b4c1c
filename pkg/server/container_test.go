package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:  config.EnvTest,
		Port:         "8081",
		SeedFixtures: true,
		Database: config.DatabaseConfig{
			ConnectionString: filepath.Join(t.TempDir(), "nested", "commission.db"),
			MaxOpenConns:     1,
			MaxIdleConns:     1,
			ConnMaxLifetime:  time.Hour,
			AutoMigrate:      true,
		},
		Server: config.ServerConfig{ShutdownTimeout: time.Second, MaxBodyBytes: 1 << 20},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TestNewContainer verifies that the container wires a working stack
func TestNewContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC) }

	container, err := NewContainer(ctx, testConfig(t), quietLogger(), WithClock(clock))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	if container.Services == nil {
		t.Fatal("Services is nil")
	}
	if err := container.Services.Validate(); err != nil {
		t.Fatalf("Service container invalid: %v", err)
	}

	if err := container.Health(ctx); err != nil {
		t.Fatalf("Health check failed: %v", err)
	}

	people, err := container.Services.PersonnelService.ListPersonnel(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to list personnel: %v", err)
	}
	if len(people) != 5 {
		t.Errorf("Expected 5 seeded personnel, got %d", len(people))
	}

	router := container.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /health, got %d: %s", w.Code, w.Body.String())
	}

	var health map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if health["version"] != Version {
		t.Errorf("Expected version %s, got %v", Version, health["version"])
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reports/management-overview?year=2025&month=7", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from overview, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev/config", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected development routes outside production, got %d", w.Code)
	}
}

// TestProductionRouterHidesDevelopmentRoutes checks that /dev is not mounted
// and fixtures are not loaded in production
func TestProductionRouterHidesDevelopmentRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	cfg := testConfig(t)
	cfg.Environment = config.EnvProduction

	container, err := NewContainer(ctx, cfg, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	people, err := container.Services.PersonnelService.ListPersonnel(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to list personnel: %v", err)
	}
	if len(people) != 0 {
		t.Errorf("Expected no fixtures in production, got %d personnel", len(people))
	}

	w := httptest.NewRecorder()
	container.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev/config", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for /dev/config in production, got %d", w.Code)
	}
}

// TestNewContainerRequiresConfig verifies the nil guard
func TestNewContainerRequiresConfig(t *testing.T) {
	if _, err := NewContainer(context.Background(), nil, nil); err == nil {
		t.Fatal("Expected error for nil config")
	}
}

// TestClose verifies Close can be called twice
func TestClose(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(t), quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	if err := container.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := container.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestMonitorStatsStopsWithContext(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFixtures = false

	container, err := NewContainer(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		container.MonitorStats(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("MonitorStats did not return after cancel")
	}
}
