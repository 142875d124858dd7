// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command lastlogin manages users of the demo admin host and shows when each
// of them last logged in.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("lastlogin")

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err = run(ctx, cfg, buildInfo, args, os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
