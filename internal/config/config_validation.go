// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %w", ErrInvalidAppConfigs, cfg.App.Locale, err)
	}

	if _, err := cfg.App.Location(); err != nil {
		return fmt.Errorf("%w: timezone %q: %w", ErrInvalidAppConfigs, cfg.App.Timezone, err)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q: %w", ErrInvalidAppConfigs, cfg.App.LogLevel, err)
		}
	}

	return nil
}

// Location resolves the configured timezone. An empty timezone is UTC.
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}
