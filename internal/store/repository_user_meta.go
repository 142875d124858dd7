// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/store-last-login/internal/logger"
)

// metaRepository is the SQL implementation of [MetaRepository] over the
// "usermeta" table.
type metaRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	logger.Debug().Msg("creating user meta repository")
	return &metaRepository{
		db:     db,
		logger: logger,
	}
}

// GetMeta returns "" without error when the user has no value for key.
func (r *metaRepository) GetMeta(ctx context.Context, userID int64, key string) (string, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := getMetaQuery(r.db.builder(), userID, key).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.GetMeta").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		log.Err(err).Str("func", "*metaRepository.GetMeta").Int64("user_id", userID).Msg("error reading meta value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// SetMeta upserts the value. A write failing with a retryable error is
// attempted once more.
func (r *metaRepository) SetMeta(ctx context.Context, userID int64, key, value string) error {
	log := logger.FromContext(ctx)

	sqlStr, args, err := upsertMetaQuery(r.db.builder(), userID, key, value).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.SetMeta").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*metaRepository.SetMeta").Msg("retrying meta upsert")
		_, err = r.db.ExecContext(ctx, sqlStr, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.SetMeta").Int64("user_id", userID).Msg("error writing meta value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *metaRepository) BackfillMeta(ctx context.Context, key, value string) (int64, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := backfillMetaQuery(r.db.builder(), key, value).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.BackfillMeta").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.BackfillMeta").Msg("error backfilling meta values")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	log.Debug().Str("func", "*metaRepository.BackfillMeta").Int64("rows", n).Msg("meta values backfilled")

	return n, nil
}
