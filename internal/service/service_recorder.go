// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/models"
)

type loginRecorder struct {
	store  TimestampStore
	clock  Clock
	logger *logger.Logger
}

func NewLoginRecorder(store TimestampStore, clock Clock, logger *logger.Logger) LoginRecorder {
	return &loginRecorder{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// RecordLogin writes the current instant for an [models.Identity]. Failed
// authentications are ignored and store errors are only logged.
func (r *loginRecorder) RecordLogin(ctx context.Context, redirectTo string, result models.AuthResult) string {
	log := logger.FromContext(ctx)

	identity, ok := models.IdentityOf(result)
	if !ok {
		log.Debug().Str("func", "*loginRecorder.RecordLogin").Msg("not a successful login, skipping")
		return redirectTo
	}

	now := models.InstantOf(r.clock.Now())
	if err := r.store.SetLoginTimestamp(ctx, identity.ID, now); err != nil {
		log.Err(err).Str("func", "*loginRecorder.RecordLogin").Int64("user_id", identity.ID).Msg("could not record login")
		return redirectTo
	}
	log.Debug().Str("func", "*loginRecorder.RecordLogin").Int64("user_id", identity.ID).Stringer("instant", now).Msg("login recorded")

	return redirectTo
}
