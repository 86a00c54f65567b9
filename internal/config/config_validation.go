// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress   = "localhost:8080"
	defaultTokenIssuer   = "ortoo"
	defaultTokenDuration = time.Hour
	defaultSQLitePath    = "ortoo.db"
	defaultClientBaseURL = "http://localhost:8080"
	defaultClientTimeout = 15 * time.Second
)

// applyDefaults fills in the documented default values for fields no source
// provided. The token duration default keeps the expiry finite: a token that
// never expires is a defect, not a configuration choice.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = defaultSQLitePath
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = defaultClientBaseURL
	}
	if cfg.Client.Timeout <= 0 {
		cfg.Client.Timeout = defaultClientTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if cfg.App.BcryptCost < 0 {
		return ErrInvalidBcryptCost
	}

	return nil
}
