// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

// MetaRepository persists per-user string attributes keyed by (user id, key).
type MetaRepository interface {
	// GetMeta returns the stored value, or "" when no row exists.
	GetMeta(ctx context.Context, userID int64, key string) (string, error)
	// SetMeta inserts or overwrites the value.
	SetMeta(ctx context.Context, userID int64, key, value string) error
	// BackfillMeta stores value for every registered user that has no row for
	// key yet and reports how many rows were written.
	BackfillMeta(ctx context.Context, key, value string) (int64, error)
}

// UserRepository manages the host's user accounts and runs listing queries.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, q *query.UserQuery) ([]models.User, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
