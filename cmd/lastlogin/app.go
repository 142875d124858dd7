// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/host"
	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/plugin"
	"github.com/MKhiriev/store-last-login/internal/service"
	"github.com/MKhiriev/store-last-login/internal/store"
	"github.com/MKhiriev/store-last-login/models"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
)

const usage = `usage: lastlogin [flags] <command> [command flags]

commands:
  version                                   print build information
  migrate                                   apply database migrations
  users add -login L -password P [-name N] [-email E]
  users list [-orderby KEY] [-order ASC|DESC] [-page N] [-per-page N]
  login -login L -password P [-redirect URL]
  profile -login L                          show the last login of one user
  backfill                                  mark users without a login as never
  stamp -instant N [-kind human|date|time]  format an epoch instant
`

// app is one process worth of wiring: storages, services, the plugin and the
// admin host it is registered on.
type app struct {
	storages *store.Storages
	services *service.Services
	admin    *host.Admin
	out      io.Writer
	logger   *logger.Logger
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, out io.Writer, log *logger.Logger) (*app, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, nil, service.SystemClock(), log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	admin := host.NewAdmin(storages.Users, host.NewAuthenticator(storages.Users, 0), i18n.New(cfg.App.Locale), log)
	plugin.New(services, log).Register(admin)

	return &app{
		storages: storages,
		services: services,
		admin:    admin,
		out:      out,
		logger:   log,
	}, nil
}

func (a *app) Close() error {
	return a.storages.Close()
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, args []string, out io.Writer, log *logger.Logger) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return ErrNoCommand
	}
	if args[0] == "version" {
		_, err := fmt.Fprint(out, buildInfo.String())
		return err
	}

	a, err := newApp(ctx, cfg, out, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.exec(ctx, args)
}

func (a *app) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	ctx = a.admin.RequestContext(ctx)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "migrate":
		_, err := fmt.Fprintln(a.out, "migrations applied")
		return err
	case "users":
		if len(rest) == 0 {
			return fmt.Errorf("%w: users needs add or list", ErrUnknownCommand)
		}
		switch rest[0] {
		case "add":
			return a.usersAdd(ctx, rest[1:])
		case "list":
			return a.usersList(ctx, rest[1:])
		}
		return fmt.Errorf("%w: users %s", ErrUnknownCommand, rest[0])
	case "login":
		return a.login(ctx, rest)
	case "profile":
		return a.profile(ctx, rest)
	case "backfill":
		return a.backfill(ctx)
	case "stamp":
		return a.stamp(ctx, rest)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}
