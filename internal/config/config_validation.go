// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks the settings the client cannot start without. Each group
// fails with its own sentinel so callers can tell them apart with errors.Is.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Driver {
	case "", "sqlite":
		// the session must survive restarts
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	case "file":
		if cfg.Storage.File.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.App.StartPage {
	case "auth", "notes":
	default:
		return fmt.Errorf("%w: unknown start page %q", ErrInvalidAppConfigs, cfg.App.StartPage)
	}

	if level := strings.ToLower(cfg.Log.Level); level != "" && !slices.Contains(logLevels, level) {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}
