// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/hooks"
	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/store"
)

// Services wires every last login component over one set of storages.
type Services struct {
	TimestampStore TimestampStore
	StampFormatter StampFormatter
	LoginRecorder  LoginRecorder
	Listing        Listing
	SortRewriter   SortRewriter
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, registry *hooks.Registry, clock Clock, logger *logger.Logger) (*Services, error) {
	location, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("error loading display timezone: %w", err)
	}
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	if clock == nil {
		clock = SystemClock()
	}

	translator := i18n.New(cfg.App.Locale)
	timestamps := NewTimestampService(storages.Meta, logger)
	formatter := NewStampFormatter(cfg.Display, location, translator, registry, clock)

	return &Services{
		TimestampStore: timestamps,
		StampFormatter: formatter,
		LoginRecorder:  NewLoginRecorder(timestamps, clock, logger),
		Listing:        NewListingService(timestamps, formatter, translator, registry, logger),
		SortRewriter:   NewSortRewriter(logger),
	}, nil
}
