package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/checkin/backend/internal/config"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/metrics"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/repository"
	"github.com/JonnyWalker81/checkin/backend/internal/service"
)

const testUserID = "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a5b"

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Store:   config.StoreConfig{Driver: config.StoreMemory},
		Auth:    config.AuthConfig{Mode: config.AuthHeader},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, health pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	return newRouter(routerDeps{
		cfg:      testConfig(),
		log:      logger.NewNop(),
		cal:      service.NewCalendar(time.UTC, func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }),
		checkins: repository.NewMemoryCheckinRepository(),
		health:   health,
		metrics:  metrics.New(registry),
		gatherer: registry,
	})
}

func request(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", testUserID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	w := request(newTestServer(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = request(newTestServer(t, failingPinger{}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_CheckinThenInsights(t *testing.T) {
	router := newTestServer(t, nil)

	w := request(router, http.MethodPost, "/api/v1/checkins", `{"mood":8,"craving":3,"stress":2,"energy":7,"coping_activities":["breathing"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = request(router, http.MethodGet, "/api/v1/checkins/insights/weekly", "")
	require.Equal(t, http.StatusOK, w.Code)

	var insights models.WindowInsights
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &insights))
	assert.Equal(t, 1, insights.TotalCheckins)
	require.NotNil(t, insights.BestDay)
	assert.Equal(t, "2026-10-19", insights.BestDay.Date.String())

	w = request(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `checkins_created_total 1`)
	assert.Contains(t, w.Body.String(), `checkin_analytics_computations_total{kind="weekly"} 1`)
}

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "001_a.sql", filepath.Base(files[0]))
	assert.Equal(t, "002_b.sql", filepath.Base(files[1]))

	_, err = migrationFiles(t.TempDir())
	assert.Error(t, err)
}

func TestMigrationFiles_Repository(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
