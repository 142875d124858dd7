// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver:         config.DriverSQLite,
		DSN:            filepath.Join(t.TempDir(), "data", "lastlogin.db"),
		ConnectTimeout: 5 * time.Second,
	}
	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLite_MetaRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	v, err := s.Meta.GetMeta(ctx, 0, models.LastLoginMetaKey)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Meta.SetMeta(ctx, 0, models.LastLoginMetaKey, "1"))
	require.NoError(t, s.Meta.SetMeta(ctx, 0, models.LastLoginMetaKey, "1700000000"))

	v, err = s.Meta.GetMeta(ctx, 0, models.LastLoginMetaKey)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", v)
}

func TestSQLite_UsersAndLastLoginOrder(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	for _, login := range []string{"alice", "bob", "carol"} {
		_, err := s.Users.CreateUser(ctx, models.User{Login: login, PasswordHash: "x"})
		require.NoError(t, err)
	}
	_, err := s.Users.CreateUser(ctx, models.User{Login: "alice", PasswordHash: "x"})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)

	bob, err := s.Users.FindUserByLogin(ctx, "bob")
	require.NoError(t, err)
	carol, err := s.Users.FindUserByLogin(ctx, "carol")
	require.NoError(t, err)

	require.NoError(t, s.Meta.SetMeta(ctx, bob.ID, models.LastLoginMetaKey, "200"))
	require.NoError(t, s.Meta.SetMeta(ctx, carol.ID, models.LastLoginMetaKey, "100"))
	require.NoError(t, s.Meta.SetMeta(ctx, carol.ID, "unrelated", "5"))

	listByLastLogin := func(dir query.Direction) []string {
		users, err := s.Users.ListUsers(ctx, lastLoginQuery(dir))
		require.NoError(t, err)
		return logins(users)
	}

	assert.Equal(t, []string{"carol", "bob", "alice"}, listByLastLogin(query.Asc))
	assert.Equal(t, []string{"alice", "bob", "carol"}, listByLastLogin(query.Desc))

	n, err := s.Meta.BackfillMeta(ctx, models.LastLoginMetaKey, models.NeverLoggedIn.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	v, err := s.Meta.GetMeta(ctx, 1, models.LastLoginMetaKey)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", v)
}

// lastLoginQuery orders the listing by the last login attribute read as a
// number, the way the users screen does.
func lastLoginQuery(dir query.Direction) *query.UserQuery {
	q := query.NewUserQuery(models.ListingRequest{Screen: models.UsersScreen})
	q.Vars.MetaKey = models.LastLoginMetaKey
	q.Vars.OrderBy = "meta_value_num"
	q.AddJoin(query.Join{
		Kind:    query.LeftOuterJoin,
		Table:   "usermeta",
		Alias:   "umeta",
		On:      "users.id = umeta.user_id",
		Filters: []sq.Sqlizer{sq.Eq{"umeta.meta_key": models.LastLoginMetaKey}},
	})
	q.Order = query.Order{
		NumberColumn: "umeta.meta_value",
		Fallback:     int64(models.NeverLoggedIn),
		Direction:    dir,
	}
	return q
}

func TestLastLoginOrder_StoredValueShapes(t *testing.T) {
	ctx := context.Background()

	backends := map[string]func(t *testing.T) *Storages{
		"sqlite": newSQLiteStorages,
		"memory": func(t *testing.T) *Storages {
			mem := NewMemoryStore(logger.Nop())
			return &Storages{Users: mem, Meta: mem}
		},
	}

	values := []struct {
		login string
		value string
	}{
		{"half", "1700000000.5"},
		{"early", "1600000000"},
		{"word", "yesterday"},
		{"exp", "1.65e9"},
		{"huge", "1e30"},
		{"nan", "NaN"},
		{"none", ""},
	}

	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			s := newBackend(t)
			for _, v := range values {
				u, err := s.Users.CreateUser(ctx, models.User{Login: v.login, PasswordHash: "x"})
				require.NoError(t, err)
				if v.value != "" {
					require.NoError(t, s.Meta.SetMeta(ctx, u.ID, models.LastLoginMetaKey, v.value))
				}
			}

			users, err := s.Users.ListUsers(ctx, lastLoginQuery(query.Asc))
			require.NoError(t, err)
			got := logins(users)
			require.Len(t, got, len(values))
			assert.Equal(t, []string{"early", "exp", "half"}, got[:3])
			assert.ElementsMatch(t, []string{"word", "huge", "nan", "none"}, got[3:])

			users, err = s.Users.ListUsers(ctx, lastLoginQuery(query.Desc))
			require.NoError(t, err)
			got = logins(users)
			assert.ElementsMatch(t, []string{"word", "huge", "nan", "none"}, got[:4])
			assert.Equal(t, []string{"half", "exp", "early"}, got[4:])
		})
	}
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.Users)
	assert.NotNil(t, s.Meta)
	assert.NoError(t, s.Close())
}
