// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-driver", "sqlite3",
		"-d", "/tmp/users.db",
		"-connect-timeout", "2s",
		"-locale", "ru",
		"-tz", "Europe/Moscow",
		"-log-level", "warn",
		"-date-format", "d.m.Y",
		"-time-format", "H:i",
		"-config", "/etc/lastlogin.json",
		"users", "list", "-orderby", "last-login",
	}

	cfg, rest, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/users.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "ru", cfg.App.Locale)
	assert.Equal(t, "Europe/Moscow", cfg.App.Timezone)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "d.m.Y", cfg.Display.DateFormat)
	assert.Equal(t, "H:i", cfg.Display.TimeFormat)
	assert.Equal(t, "/etc/lastlogin.json", cfg.JSONFilePath)

	assert.Equal(t, []string{"users", "list", "-orderby", "last-login"}, rest)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Empty(t, rest)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, rest, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Empty(t, rest)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, _, err := ParseFlags([]string{"-connect-timeout", "later"})
	assert.Error(t, err)
}
