// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/store-last-login/models"
)

const (
	usersTable    = "users"
	usermetaTable = "usermeta"
)

var userColumns = []string{"id", "login", "display_name", "email", "password_hash", "registered_at"}

func getMetaQuery(b sq.StatementBuilderType, userID int64, key string) sq.SelectBuilder {
	return b.Select("meta_value").
		From(usermetaTable).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"meta_key": key}}).
		Limit(1)
}

// upsertMetaQuery relies on the UNIQUE (user_id, meta_key) constraint; both
// PostgreSQL and SQLite understand the excluded pseudo table.
func upsertMetaQuery(b sq.StatementBuilderType, userID int64, key, value string) sq.InsertBuilder {
	return b.Insert(usermetaTable).
		Columns("user_id", "meta_key", "meta_value").
		Values(userID, key, value).
		Suffix("ON CONFLICT (user_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value")
}

func backfillMetaQuery(b sq.StatementBuilderType, key, value string) sq.InsertBuilder {
	missing := sq.Select("users.id").
		Column("CAST(? AS TEXT)", key).
		Column("CAST(? AS TEXT)", value).
		From(usersTable).
		Where("NOT EXISTS (SELECT 1 FROM usermeta m WHERE m.user_id = users.id AND m.meta_key = ?)", key)

	return b.Insert(usermetaTable).
		Columns("user_id", "meta_key", "meta_value").
		Select(missing)
}

func createUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(usersTable).
		Columns("login", "display_name", "email", "password_hash", "registered_at").
		Values(user.Login, user.DisplayName, user.Email, user.PasswordHash, user.RegisteredAt).
		Suffix("RETURNING id")
}

func findUserQuery(b sq.StatementBuilderType, pred sq.Sqlizer) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(usersTable).
		Where(pred).
		Limit(1)
}
