// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.rest)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without any source fails
// validation because no driver is configured.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Locale: "de"}},
		&StructuredConfig{App: App{Locale: "fr", Timezone: "Europe/Paris"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.App.Locale)
	assert.Equal(t, "Europe/Paris", cfg.App.Timezone)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_LOCALE", "ru")
	t.Setenv("DISPLAY_DATE_FORMAT", "d.m.Y")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "ru", b.configs[0].App.Locale)
	assert.Equal(t, "d.m.Y", b.configs[0].Display.DateFormat)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_KeepsRest(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-driver", "memory", "users", "list"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, DriverMemory, b.configs[0].Storage.DB.Driver)
	assert.Equal(t, []string{"users", "list"}, b.rest)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Display.TimeFormat = "H:i"
	payload.Storage.DB.ConnectTimeout = Duration(3 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "H:i", b.configs[1].Display.TimeFormat)
	assert.Equal(t, 3*time.Second, b.configs[1].Storage.DB.ConnectTimeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path of the highest priority
// source is used when several sources name a file.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Locale = "es"
	firstPath := writeTempJSONConfig(t, first)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: firstPath},
		&StructuredConfig{JSONFilePath: "/nonexistent/second.json"},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "es", b.configs[2].App.Locale)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverEnv(t *testing.T) {
	t.Setenv("APP_LOCALE", "fr")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/app")

	cfg, rest, err := GetStructuredConfig([]string{"-locale", "de", "backfill"})
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.App.Locale)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/app", cfg.Storage.DB.DSN)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, []string{"backfill"}, rest)
}

func TestGetStructuredConfig_Invalid(t *testing.T) {
	cfg, rest, err := GetStructuredConfig([]string{"-driver", "oracle"})
	assert.Nil(t, cfg)
	assert.Nil(t, rest)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
