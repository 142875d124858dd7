// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

// TimestampStore reads and writes the last login instant of a user.
type TimestampStore interface {
	// GetLoginTimestamp returns the stored instant. A user without one gets
	// [models.NeverLoggedIn] written and returned.
	GetLoginTimestamp(ctx context.Context, userID int64) (models.Instant, error)
	// SetLoginTimestamp overwrites the stored instant.
	SetLoginTimestamp(ctx context.Context, userID int64, instant models.Instant) error
	// BackfillNever stores [models.NeverLoggedIn] for every user lacking an
	// instant and reports how many were written.
	BackfillNever(ctx context.Context) (int64, error)
}

// StampFormatter renders an instant for display.
type StampFormatter interface {
	FormatStamp(ctx context.Context, instant models.Instant, kind models.FormatKind, userID int64) string
}

// LoginRecorder observes completed authentications.
type LoginRecorder interface {
	// RecordLogin stores the current instant for a successful identity and
	// returns redirectTo unchanged in every case.
	RecordLogin(ctx context.Context, redirectTo string, result models.AuthResult) string
}

// Listing contributes the last login column and profile row to the host's
// user screens.
type Listing interface {
	RegisterColumns(columns models.Columns) models.Columns
	SortableColumns(columns map[string]string) map[string]string
	ColumnValue(ctx context.Context, value, column string, userID int64) string
	RenderProfile(ctx context.Context, w io.Writer, result models.AuthResult) error
}

// SortRewriter adjusts a user listing plan before it is executed.
type SortRewriter interface {
	RewriteUserQuery(ctx context.Context, req models.ListingRequest, q *query.UserQuery)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
