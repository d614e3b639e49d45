package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("APP_PASSWORD", "hunter2")
	t.Setenv("TOKEN_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.LoginRatePerMin)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, 4000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 5*time.Minute, cfg.Feeds.CacheTTL)
	assert.Equal(t, "output", cfg.Render.OutputDir)
	assert.Zero(t, cfg.Render.Retention, "sweep disabled by default")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "2000")
	t.Setenv("OUTPUT_RETENTION", "48h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 48*time.Hour, cfg.Render.Retention)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANTHROPIC_MAX_TOKENS", "not-a-number")
	t.Setenv("TOKEN_TTL", "sometime")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestValidate_MissingCredentials(t *testing.T) {
	cases := []struct {
		name  string
		unset string
	}{
		{"anthropic key", "ANTHROPIC_API_KEY"},
		{"app password", "APP_PASSWORD"},
		{"token secret", "TOKEN_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.unset)
		})
	}
}
