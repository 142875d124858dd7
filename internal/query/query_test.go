// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/store-last-login/models"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Asc, ParseDirection("ASC", Desc))
	assert.Equal(t, Desc, ParseDirection("DESC", Asc))
	assert.Equal(t, Desc, ParseDirection("asc", Desc))
	assert.Equal(t, Asc, ParseDirection("", Asc))
	assert.Equal(t, Desc, ParseDirection("sideways", Desc))
}

func TestNewUserQuery_Defaults(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{Screen: models.UsersScreen})

	query, args, err := q.ToSQL(SQLite)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT users.id, users.login, users.display_name, users.email, users.registered_at FROM users ORDER BY users.login ASC",
		query)
	assert.Empty(t, args)
}

func TestNewUserQuery_BuiltInSortKey(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{OrderBy: "email", Order: "DESC"})

	query, _, err := q.ToSQL(SQLite)
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY users.email DESC")
	assert.Equal(t, "email", q.Vars.OrderBy)
	assert.Equal(t, "DESC", q.Vars.Order)
}

// TestNewUserQuery_UnknownSortKey verifies that an extension-owned key keeps
// the default column until an extension rewrites the plan.
func TestNewUserQuery_UnknownSortKey(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{OrderBy: "last-login"})

	assert.Equal(t, Order{Expr: "users.login", Direction: Asc}, q.Order)
	assert.Equal(t, "last-login", q.Vars.OrderBy)
}

func TestNewUserQuery_Paging(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{Page: 3, PerPage: 20})

	query, _, err := q.ToSQL(SQLite)
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 20 OFFSET 40")

	first := NewUserQuery(models.ListingRequest{Page: 1, PerPage: 20})
	assert.Equal(t, uint64(20), first.Limit)
	assert.Zero(t, first.Offset)
}

func TestUserQuery_JoinWithFilter(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{})
	q.AddJoin(Join{
		Kind:    LeftOuterJoin,
		Table:   "usermeta",
		Alias:   "umeta",
		On:      "users.id = umeta.user_id",
		Filters: []sq.Sqlizer{sq.Eq{"umeta.meta_key": "_k"}},
	})
	q.AddWhere(sq.Like{"users.email": "%@example.com"})
	q.Order = Order{Expr: "umeta.meta_value", Direction: Desc}

	query, args, err := q.ToSQL(Postgres)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users LEFT OUTER JOIN usermeta AS umeta ON (users.id = umeta.user_id AND umeta.meta_key = $1)")
	assert.Contains(t, query, "WHERE users.email LIKE $2")
	assert.Contains(t, query, "ORDER BY umeta.meta_value DESC")
	assert.Equal(t, []any{"_k", "%@example.com"}, args)
	assert.True(t, q.HasJoin("umeta"))
	assert.False(t, q.HasJoin("other"))
}

func TestUserQuery_JoinDefaultsToInner(t *testing.T) {
	q := &UserQuery{Columns: []string{"users.id"}}
	q.AddJoin(Join{Table: "roles", On: "roles.user_id = users.id"})

	query, _, err := q.ToSQL(SQLite)
	require.NoError(t, err)
	assert.Equal(t, "SELECT users.id FROM users INNER JOIN roles ON (roles.user_id = users.id)", query)
}

func TestUserQuery_IncompleteJoin(t *testing.T) {
	q := NewUserQuery(models.ListingRequest{})
	q.AddJoin(Join{Table: "usermeta"})

	_, _, err := q.ToSQL(SQLite)
	assert.ErrorIs(t, err, ErrIncompleteJoin)
}

func TestUserQuery_NumberOrder(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{
			name:    "postgres",
			dialect: Postgres,
			want: "ORDER BY COALESCE(CASE WHEN umeta.meta_value ~ '" + postgresNumber + "' " +
				"THEN CASE WHEN CAST(umeta.meta_value AS NUMERIC) >= -9223372036854775808 " +
				"AND CAST(umeta.meta_value AS NUMERIC) < 9223372036854775808 " +
				"THEN TRUNC(CAST(umeta.meta_value AS NUMERIC)) END END, 99) DESC",
		},
		{
			name:    "sqlite",
			dialect: SQLite,
			want: "ORDER BY COALESCE(CASE WHEN umeta.meta_value GLOB '*[0-9]*' " +
				"AND umeta.meta_value NOT GLOB '*[^0-9.eE+-]*' " +
				"AND CAST(umeta.meta_value AS REAL) >= -9223372036854775808.0 " +
				"AND CAST(umeta.meta_value AS REAL) < 9223372036854775808.0 " +
				"THEN CAST(CAST(umeta.meta_value AS REAL) AS INTEGER) END, 99) DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &UserQuery{Columns: []string{"users.id"}}
			q.Order = Order{NumberColumn: "umeta.meta_value", Fallback: 99, Direction: Desc}

			query, args, err := q.ToSQL(tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, "SELECT users.id FROM users "+tt.want, query)
			assert.Empty(t, args)
		})
	}
}

func TestUserQuery_NumberOrderNeedsDialect(t *testing.T) {
	q := &UserQuery{Columns: []string{"users.id"}}
	q.Order = Order{NumberColumn: "umeta.meta_value", Direction: Asc}

	_, _, err := q.ToSQL(Dialect{Name: "mysql", Placeholder: sq.Question})
	assert.ErrorIs(t, err, ErrUnknownDialect)
}
