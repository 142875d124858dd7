// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/store-last-login/internal/hooks"
	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/models"
)

const profileRow = `<tr class="user-last-login-time"><th>%s</th><td><em>%s</em></td></tr>`

// listingService is the default [Listing].
type listingService struct {
	store      TimestampStore
	formatter  StampFormatter
	translator i18n.Translator
	hooks      *hooks.Registry

	// policy sanitizes cell HTML after the ColumnDisplay hook.
	policy *bluemonday.Policy

	logger *logger.Logger
}

func NewListingService(store TimestampStore, formatter StampFormatter, translator i18n.Translator, registry *hooks.Registry, logger *logger.Logger) Listing {
	return &listingService{
		store:      store,
		formatter:  formatter,
		translator: translator,
		hooks:      registry,
		policy:     CellPolicy(),
		logger:     logger,
	}
}

// RegisterColumns adds the last login column, replacing the label if the key
// is already present.
func (s *listingService) RegisterColumns(columns models.Columns) models.Columns {
	return columns.Set(models.LastLoginColumn, s.translator.T(i18n.LastLogin))
}

// SortableColumns marks the last login column sortable under its own key.
func (s *listingService) SortableColumns(columns map[string]string) map[string]string {
	if columns == nil {
		columns = make(map[string]string, 1)
	}
	columns[models.LastLoginColumn] = models.LastLoginColumn
	return columns
}

// ColumnValue renders the last login cell for userID and passes every other
// column through untouched. Reading a user without an instant backfills the
// sentinel.
func (s *listingService) ColumnValue(ctx context.Context, value, column string, userID int64) string {
	if column != models.LastLoginColumn {
		return value
	}

	instant, err := s.store.GetLoginTimestamp(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listingService.ColumnValue").Int64("user_id", userID).Msg("showing never")
		instant = models.NeverLoggedIn
	}

	var cell string
	if instant.IsNever() {
		cell = "<em>" + html.EscapeString(s.translator.T(i18n.Never)) + "</em>"
	} else {
		cell = s.formatter.FormatStamp(ctx, instant, models.FormatDate, userID) +
			"<br>" +
			s.formatter.FormatStamp(ctx, instant, models.FormatTime, userID)
	}

	cell = s.hooks.ColumnDisplay.Apply(ctx, cell, hooks.Args{UserID: userID, Instant: instant})
	return s.policy.Sanitize(cell)
}

// RenderProfile writes the profile table row for a valid identity. Anything
// else writes nothing.
func (s *listingService) RenderProfile(ctx context.Context, w io.Writer, result models.AuthResult) error {
	identity, ok := models.IdentityOf(result)
	if !ok {
		return nil
	}

	instant, err := s.store.GetLoginTimestamp(ctx, identity.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listingService.RenderProfile").Int64("user_id", identity.ID).Msg("showing never")
		instant = models.NeverLoggedIn
	}

	args := hooks.Args{UserID: identity.ID, Instant: instant}
	kind := s.hooks.ProfileFormatKind.Apply(ctx, models.FormatHuman, args)

	show := s.translator.T(i18n.Never)
	if !instant.IsNever() {
		show = s.formatter.FormatStamp(ctx, instant, kind, identity.ID)
	}
	show = s.hooks.ProfileDisplay.Apply(ctx, show, args)

	_, err = fmt.Fprintf(w, profileRow, html.EscapeString(s.translator.T(i18n.LastLogin)), html.EscapeString(show))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingProfile, err)
	}
	return nil
}
