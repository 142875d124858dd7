// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the global configuration flags from args (without the
// program name) and returns the populated config together with the remaining
// non-flag arguments.
//
// Flags:
//
//	-driver storage driver: pgx, sqlite3 or memory
//	-d database DSN
//	-connect-timeout database ping timeout (e.g., "5s")
//	-locale UI locale (BCP 47, e.g., "de")
//	-tz display timezone (IANA, e.g., "Europe/Berlin")
//	-log-level zerolog level name
//	-date-format date pattern (PHP date letters, e.g., "F j, Y")
//	-time-format time pattern (PHP date letters, e.g., "g:i a")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		driver         string
		databaseDSN    string
		connectTimeout time.Duration
		locale         string
		timezone       string
		logLevel       string
		dateFormat     string
		timeFormat     string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("lastlogin", flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Storage driver: pgx, sqlite3 or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database ping timeout (e.g., 5s)")
	fs.StringVar(&locale, "locale", "", "UI locale (e.g., en, de)")
	fs.StringVar(&timezone, "tz", "", "Display timezone (e.g., Europe/Berlin)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&dateFormat, "date-format", "", "Date pattern (e.g., \"F j, Y\")")
	fs.StringVar(&timeFormat, "time-format", "", "Time pattern (e.g., \"g:i a\")")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:   locale,
			Timezone: timezone,
			LogLevel: logLevel,
		},
		Display: Display{
			DateFormat: dateFormat,
			TimeFormat: timeFormat,
		},
		Storage: Storage{
			DB: DB{
				Driver:         driver,
				DSN:            databaseDSN,
				ConnectTimeout: connectTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
