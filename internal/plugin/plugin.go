// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugin binds the last login services to the extension points of a
// host application.
package plugin

import (
	"context"
	"io"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/internal/service"
	"github.com/MKhiriev/store-last-login/models"
)

// Handler signatures of the host extension points.
type (
	LoginRedirectHandler   func(ctx context.Context, redirectTo string, result models.AuthResult) string
	ProfileSectionHandler  func(ctx context.Context, w io.Writer, result models.AuthResult) error
	PreUserQueryHandler    func(ctx context.Context, req models.ListingRequest, q *query.UserQuery)
	ColumnDataHandler      func(ctx context.Context, value, column string, userID int64) string
	ColumnsHandler         func(columns models.Columns) models.Columns
	SortableColumnsHandler func(columns map[string]string) map[string]string
)

// Host is implemented by the application the plugin extends. Handlers are
// invoked synchronously in registration order.
type Host interface {
	OnLoginRedirect(h LoginRedirectHandler)
	OnProfileSection(h ProfileSectionHandler)
	OnPreUserQuery(h PreUserQueryHandler)
	OnColumnData(h ColumnDataHandler)
	OnColumns(h ColumnsHandler)
	OnSortableColumns(h SortableColumnsHandler)
}

// Plugin is the application context of the last login extension. Build it
// once with [New] and hand it to every host that should show last logins.
type Plugin struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) *Plugin {
	return &Plugin{
		services: services,
		logger:   logger,
	}
}

// Register installs exactly one handler per extension point on h.
func (p *Plugin) Register(h Host) {
	p.logger.Debug().Str("func", "*Plugin.Register").Msg("registering last login handlers")

	h.OnLoginRedirect(p.services.LoginRecorder.RecordLogin)
	h.OnProfileSection(p.services.Listing.RenderProfile)
	h.OnPreUserQuery(p.services.SortRewriter.RewriteUserQuery)
	h.OnColumnData(p.services.Listing.ColumnValue)
	h.OnColumns(p.services.Listing.RegisterColumns)
	h.OnSortableColumns(p.services.Listing.SortableColumns)
}

// Timestamps exposes the read/write accessors to other extensions.
func (p *Plugin) Timestamps() service.TimestampStore {
	return p.services.TimestampStore
}

// Formatter exposes the stamp formatter to other extensions.
func (p *Plugin) Formatter() service.StampFormatter {
	return p.services.StampFormatter
}
