// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by validate to fields left empty by every source.
const (
	DefaultHTTPAddress      = "localhost:5000"
	DefaultDataDir          = "./data"
	DefaultVersion          = "dev"
	DefaultSessionIssuer    = "go-parking-mate"
	DefaultSessionDuration  = 24 * time.Hour
	DefaultAdapterTimeout   = 10 * time.Second
	DefaultServerReqTimeout = 30 * time.Second
)

// validate fills defaults into the merged [StructuredConfig] and checks
// that the result is usable at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: negative session duration", ErrInvalidAppConfigs)
	}
	cfg.App.AdminEmails = normalizeList(cfg.App.AdminEmails)
	if cfg.App.DisableIdentityHeader && cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: identity header is disabled and no session sign key is set", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Files.DataDir == "" {
		cfg.Storage.Files.DataDir = DefaultDataDir
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerReqTimeout
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.LoginRateLimit < 0 {
		return fmt.Errorf("%w: negative timeout or rate limit", ErrInvalidServerConfigs)
	}
	cfg.Server.CORSAllowedOrigins = normalizeList(cfg.Server.CORSAllowedOrigins)

	if cfg.Adapter.ScoringAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ScoreRefreshInterval < 0 {
		return fmt.Errorf("%w: negative score refresh interval", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.ScoreRefreshInterval > 0 && cfg.Adapter.ScoringAddress == "" {
		return fmt.Errorf("%w: score refresh needs a scoring address", ErrInvalidWorkerConfigs)
	}

	return nil
}

func normalizeList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
