package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/auth"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Auth: config.AuthConfig{
			Password:        "hunter2",
			TokenSecret:     "test-secret",
			TokenTTL:        time.Hour,
			LoginRatePerMin: 100,
		},
		Anthropic: config.AnthropicConfig{APIKey: "test-key", Model: "test-model", MaxTokens: 100},
		Render: config.RenderConfig{
			OutputDir:    dir,
			SettingsPath: filepath.Join(dir, "settings.json"),
		},
		App: config.AppConfig{Environment: "test", LogLevel: "error", Version: "test"},
	}
}

func buildTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		ServiceName: "proposal-backend",
		Cfg:         testConfig(t),
		Log:         zap.NewNop(),
	})
}

func TestRouter_Health(t *testing.T) {
	r := buildTestRouter(t)

	for _, path := range []string{"/health", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "healthy")
	}
}

func TestRouter_Metrics(t *testing.T) {
	r := buildTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r := buildTestRouter(t)

	protected := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/analyze"},
		{http.MethodPost, "/api/generate-pdf"},
		{http.MethodGet, "/api/settings"},
		{http.MethodPost, "/api/settings"},
	}
	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_TokenGrantsAccess(t *testing.T) {
	r := buildTestRouter(t)

	svc := auth.NewService("hunter2", "test-secret", time.Hour)
	token, err := svc.Issue("hunter2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := buildTestRouter(t)

	// login and auth-check are reachable without a token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth-check", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// feeds are public but validate their input
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/youtube-rss", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_CRMDisabledWithoutCredentials(t *testing.T) {
	r := buildTestRouter(t)

	svc := auth.NewService("hunter2", "test-secret", time.Hour)
	token, err := svc.Issue("hunter2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/crm", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
