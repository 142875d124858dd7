// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

const (
	metaAlias      = "umeta"
	metaTable      = "usermeta"
	metaOrderByVar = "meta_value_num"
)

type sortRewriter struct {
	logger *logger.Logger
}

func NewSortRewriter(logger *logger.Logger) SortRewriter {
	return &sortRewriter{logger: logger}
}

// RewriteUserQuery orders the users screen by last login when the request
// asks for the last-login column. Any other request leaves q untouched.
//
// The meta_key restriction is part of the join condition, so users without
// an instant stay in the listing and sort as never logged in, as do stored
// values that are not numbers. Only an exact "ASC" sorts ascending.
func (r *sortRewriter) RewriteUserQuery(ctx context.Context, req models.ListingRequest, q *query.UserQuery) {
	if q == nil || req.Screen != models.UsersScreen || req.OrderBy != models.LastLoginColumn {
		return
	}

	q.Vars.MetaKey = models.LastLoginMetaKey
	q.Vars.OrderBy = metaOrderByVar

	if !q.HasJoin(metaAlias) {
		q.AddJoin(query.Join{
			Kind:    query.LeftOuterJoin,
			Table:   metaTable,
			Alias:   metaAlias,
			On:      query.UsersTable + ".id = " + metaAlias + ".user_id",
			Filters: []sq.Sqlizer{sq.Eq{metaAlias + ".meta_key": models.LastLoginMetaKey}},
		})
	}

	q.Order = query.Order{
		NumberColumn: metaAlias + ".meta_value",
		Fallback:     int64(models.NeverLoggedIn),
		Direction:    query.ParseDirection(req.Order, query.Desc),
	}

	logger.FromContext(ctx).Debug().Str("func", "*sortRewriter.RewriteUserQuery").Str("direction", string(q.Order.Direction)).Msg("listing ordered by last login")
}
