// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":                 "1.0.0",
		"APP_SESSION_SIGN_KEY":        "jwt_secret",
		"APP_SESSION_ISSUER":          "test_issuer",
		"APP_SESSION_DURATION":        "1h",
		"APP_ADMIN_EMAILS":            "admin@parking.kr,ops@parking.kr",
		"APP_DISABLE_IDENTITY_HEADER": "true",

		"SERVER_ADDRESS":              "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":      "30s",
		"SERVER_CORS_ALLOWED_ORIGINS": "http://localhost:5173",
		"SERVER_LOGIN_RATE_LIMIT":     "10",
		"SERVER_STATIC_DIR":           "/srv/www",

		"STORAGE_FILES_DATA_DIR": "/var/data",

		"ADAPTER_SCORING_ADDRESS": "http://scoring:8000",
		"ADAPTER_SERVER_ADDRESS":  "http://api:5000",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"WORKERS_SCORE_REFRESH_INTERVAL": "30m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "jwt_secret", cfg.App.SessionSignKey)
	assert.Equal(t, "test_issuer", cfg.App.SessionIssuer)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, []string{"admin@parking.kr", "ops@parking.kr"}, cfg.App.AdminEmails)
	assert.True(t, cfg.App.DisableIdentityHeader)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.Server.LoginRateLimit)
	assert.Equal(t, "/srv/www", cfg.Server.StaticDir)

	assert.Equal(t, "/var/data", cfg.Storage.Files.DataDir)

	assert.Equal(t, "http://scoring:8000", cfg.Adapter.ScoringAddress)
	assert.Equal(t, "http://api:5000", cfg.Adapter.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.ScoreRefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_SESSION_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":       "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.SessionSignKey)
	assert.Empty(t, cfg.App.SessionIssuer)
	assert.Zero(t, cfg.App.SessionDuration)
	assert.Empty(t, cfg.App.AdminEmails)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Empty(t, cfg.Storage.Files.DataDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_SESSION_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_DISABLE_IDENTITY_HEADER": "maybe"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_SESSION_SIGN_KEY",
		"APP_SESSION_ISSUER",
		"APP_SESSION_DURATION",
		"APP_ADMIN_EMAILS",
		"APP_DISABLE_IDENTITY_HEADER",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_CORS_ALLOWED_ORIGINS",
		"SERVER_LOGIN_RATE_LIMIT",
		"SERVER_STATIC_DIR",

		"STORAGE_FILES_DATA_DIR",

		"ADAPTER_SCORING_ADDRESS",
		"ADAPTER_SERVER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"WORKERS_SCORE_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
