// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/store"
	"github.com/MKhiriev/store-last-login/models"
)

// timestampService is the default [TimestampStore]. It keeps the instant as
// the decimal string of the "_slld_last_login" user attribute.
type timestampService struct {
	// meta is the attribute storage the instant lives in.
	meta store.MetaRepository

	logger *logger.Logger
}

func NewTimestampService(meta store.MetaRepository, logger *logger.Logger) TimestampStore {
	return &timestampService{
		meta:   meta,
		logger: logger,
	}
}

// GetLoginTimestamp reads the stored instant. Float strings are truncated.
// An absent, empty or non numeric value is replaced by the sentinel, which is
// written back before it is returned so that listings can sort on it.
func (s *timestampService) GetLoginTimestamp(ctx context.Context, userID int64) (models.Instant, error) {
	log := logger.FromContext(ctx)

	raw, err := s.meta.GetMeta(ctx, userID, models.LastLoginMetaKey)
	if err != nil {
		return models.NeverLoggedIn, fmt.Errorf("%w: %w", ErrReadingTimestamp, err)
	}

	if raw != "" {
		instant, err := models.ParseInstant(raw)
		if err == nil {
			return instant, nil
		}
		log.Warn().Str("func", "*timestampService.GetLoginTimestamp").
			Int64("user_id", userID).
			Str("value", raw).
			Msg("stored last login is not numeric, resetting")
	}

	if err = s.SetLoginTimestamp(ctx, userID, models.NeverLoggedIn); err != nil {
		return models.NeverLoggedIn, err
	}

	return models.NeverLoggedIn, nil
}

func (s *timestampService) SetLoginTimestamp(ctx context.Context, userID int64, instant models.Instant) error {
	if err := s.meta.SetMeta(ctx, userID, models.LastLoginMetaKey, instant.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingTimestamp, err)
	}
	return nil
}

func (s *timestampService) BackfillNever(ctx context.Context) (int64, error) {
	n, err := s.meta.BackfillMeta(ctx, models.LastLoginMetaKey, models.NeverLoggedIn.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackfillingStamps, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*timestampService.BackfillNever").Int64("users", n).Msg("sentinel backfilled")
	return n, nil
}
