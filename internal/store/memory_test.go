// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

func seedMemory(t *testing.T, logins ...string) *MemoryStore {
	t.Helper()

	s := NewMemoryStore(logger.Nop())
	for _, login := range logins {
		_, err := s.CreateUser(context.Background(), models.User{Login: login})
		require.NoError(t, err)
	}
	return s
}

func logins(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Login)
	}
	return out
}

func TestMemoryStore_Meta(t *testing.T) {
	ctx := context.Background()
	s := seedMemory(t)

	v, err := s.GetMeta(ctx, 42, models.LastLoginMetaKey)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetMeta(ctx, 42, models.LastLoginMetaKey, "1"))
	require.NoError(t, s.SetMeta(ctx, 42, models.LastLoginMetaKey, "2"))

	v, err = s.GetMeta(ctx, 42, models.LastLoginMetaKey)
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	v, err = s.GetMeta(ctx, 42, "other")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := seedMemory(t, "alice")

	_, err := s.CreateUser(ctx, models.User{Login: "alice"})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)

	u, err := s.FindUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.RegisteredAt.IsZero())

	_, err = s.FindUserByID(ctx, 99)
	require.ErrorIs(t, err, ErrNoUserWasFound)
	_, err = s.FindUserByLogin(ctx, "ghost")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryStore_BackfillMeta(t *testing.T) {
	ctx := context.Background()
	s := seedMemory(t, "alice", "bob", "carol")
	require.NoError(t, s.SetMeta(ctx, 2, models.LastLoginMetaKey, "1700000000"))

	n, err := s.BackfillMeta(ctx, models.LastLoginMetaKey, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	v, _ := s.GetMeta(ctx, 2, models.LastLoginMetaKey)
	assert.Equal(t, "1700000000", v)
	v, _ = s.GetMeta(ctx, 3, models.LastLoginMetaKey)
	assert.Equal(t, "9999999999", v)

	n, err = s.BackfillMeta(ctx, models.LastLoginMetaKey, "9999999999")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStore_ListUsers(t *testing.T) {
	ctx := context.Background()
	s := seedMemory(t, "carol", "alice", "bob", "dave")
	require.NoError(t, s.SetMeta(ctx, 1, models.LastLoginMetaKey, "300"))
	require.NoError(t, s.SetMeta(ctx, 2, models.LastLoginMetaKey, "100"))
	require.NoError(t, s.SetMeta(ctx, 3, models.LastLoginMetaKey, "200"))

	metaQuery := func(dir query.Direction) *query.UserQuery {
		q := query.NewUserQuery(models.ListingRequest{Screen: models.UsersScreen})
		q.Vars.MetaKey = models.LastLoginMetaKey
		q.Vars.OrderBy = "meta_value_num"
		q.Order.Direction = dir
		return q
	}

	t.Run("default login order", func(t *testing.T) {
		users, err := s.ListUsers(ctx, query.NewUserQuery(models.ListingRequest{}))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, logins(users))
	})

	t.Run("meta ascending puts missing last", func(t *testing.T) {
		users, err := s.ListUsers(ctx, metaQuery(query.Asc))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, logins(users))
	})

	t.Run("meta descending puts missing first", func(t *testing.T) {
		users, err := s.ListUsers(ctx, metaQuery(query.Desc))
		require.NoError(t, err)
		assert.Equal(t, []string{"dave", "carol", "bob", "alice"}, logins(users))
	})

	t.Run("paging", func(t *testing.T) {
		q := query.NewUserQuery(models.ListingRequest{Page: 2, PerPage: 3})
		users, err := s.ListUsers(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"dave"}, logins(users))

		q = query.NewUserQuery(models.ListingRequest{Page: 5, PerPage: 3})
		users, err = s.ListUsers(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("predicates are rejected", func(t *testing.T) {
		q := query.NewUserQuery(models.ListingRequest{})
		q.AddWhere(sq.Eq{"users.login": "alice"})

		_, err := s.ListUsers(ctx, q)
		require.ErrorIs(t, err, ErrUnsupportedQuery)
	})
}
