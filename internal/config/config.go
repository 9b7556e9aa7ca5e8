// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-parking-mate server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session signing,
	// admin accounts and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the JSON file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and HTTP edge settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the external scoring module client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SessionSignKey is the secret used to sign session cookies (HS256).
	// When empty, login does not issue a cookie and identity is resolved
	// from the X-User-Email header only.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a session cookie remains valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// AdminEmails lists the accounts granted the admin role.
	// Env: APP_ADMIN_EMAILS (comma separated)
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// DisableIdentityHeader turns off the X-User-Email development header.
	// Env: APP_DISABLE_IDENTITY_HEADER
	DisableIdentityHeader bool `env:"DISABLE_IDENTITY_HEADER"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// Files holds the JSON file store settings.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the JSON collections.
type Files struct {
	// DataDir is the directory holding userData.json, bookmarks.json,
	// ratingData.json and parkingData.json.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. Empty disables the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// LoginRateLimit is the number of register/login requests allowed per
	// client IP per minute. Zero disables the limit.
	// Env: SERVER_LOGIN_RATE_LIMIT
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT"`

	// StaticDir is an optional directory with the built frontend. When set,
	// unmatched GET requests outside the API are served from it.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Adapter holds configuration for outbound HTTP clients: the external
// scoring module and, for the terminal client, the parking-mate API.
type Adapter struct {
	// ScoringAddress is the base URL of the scoring module
	// (e.g. "http://localhost:8000"). Empty disables score refresh.
	// Env: ADAPTER_SCORING_ADDRESS
	ScoringAddress string `env:"SCORING_ADDRESS"`

	// ServerAddress is the base URL of the parking-mate API used by the
	// terminal client. Empty means the server's own HTTPAddress.
	// Env: ADAPTER_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ScoreRefreshInterval is how often the recommendation scores are
	// recomputed through the scoring module. Zero disables the worker.
	// Env: WORKERS_SCORE_REFRESH_INTERVAL
	ScoreRefreshInterval time.Duration `env:"SCORE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
