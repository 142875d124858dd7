// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query holds the structured plan of the administrative user listing
// query. Extensions mutate the plan (joins, predicates, ordering) before the
// listing compiles it to SQL with squirrel.
package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/store-last-login/models"
)

// UsersTable is the host table listed by the user listing.
const UsersTable = "users"

// Join kinds.
const (
	LeftOuterJoin = "LEFT OUTER JOIN"
	InnerJoin     = "INNER JOIN"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection maps the raw "order" request parameter to a Direction.
// Only the exact values "ASC" and "DESC" are recognized; anything else yields
// fallback.
func ParseDirection(raw string, fallback Direction) Direction {
	switch raw {
	case models.OrderAsc:
		return Asc
	case models.OrderDesc:
		return Desc
	default:
		return fallback
	}
}

// Vars are the key/value parameters of the listing query.
type Vars struct {
	// MetaKey names the user attribute the listing is keyed on, if any.
	MetaKey string
	// OrderBy is the logical sort key ("login", "email", "meta_value_num", ...).
	OrderBy string
	// Order is the raw requested direction.
	Order string
}

// Join is one joined table of the plan.
type Join struct {
	Kind  string
	Table string
	Alias string
	// On is the column equality joining Alias to the listed table.
	On string
	// Filters restrict which rows of Table take part in the join.
	Filters []sq.Sqlizer
}

// Order is the explicit ORDER BY of the plan.
//
// Expr is used verbatim. When NumberColumn is set the plan orders by that
// text column read as an integer instead, rendered for the target dialect;
// NULL and non numeric values sort as Fallback.
type Order struct {
	Expr         string
	NumberColumn string
	Fallback     int64
	Direction    Direction
}

func (o Order) expr(d Dialect) (string, error) {
	if o.NumberColumn == "" {
		return o.Expr, nil
	}
	if d.number == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, d.Name)
	}
	return d.NumberOr(o.NumberColumn, o.Fallback), nil
}

// UserQuery is the in-flight listing query.
type UserQuery struct {
	Columns []string
	Vars    Vars
	Joins   []Join
	Where   []sq.Sqlizer
	Order   Order
	Limit   uint64
	Offset  uint64
}

var defaultColumns = []string{
	"users.id",
	"users.login",
	"users.display_name",
	"users.email",
	"users.registered_at",
}

// sortColumns maps the host's built-in sort keys to columns.
var sortColumns = map[string]string{
	"id":         "users.id",
	"login":      "users.login",
	"username":   "users.login",
	"name":       "users.display_name",
	"email":      "users.email",
	"registered": "users.registered_at",
}

// NewUserQuery builds the default plan for req: every user, ordered by a
// built-in column (login when the requested key is not built in), paged when
// req.PerPage is set.
func NewUserQuery(req models.ListingRequest) *UserQuery {
	orderBy := req.OrderBy
	column, ok := sortColumns[orderBy]
	if !ok {
		column = sortColumns["login"]
	}

	q := &UserQuery{
		Columns: append([]string(nil), defaultColumns...),
		Vars: Vars{
			OrderBy: orderBy,
			Order:   req.Order,
		},
		Order: Order{
			Expr:      column,
			Direction: ParseDirection(req.Order, Asc),
		},
	}

	if req.PerPage > 0 {
		q.Limit = uint64(req.PerPage)
		if req.Page > 1 {
			q.Offset = uint64((req.Page - 1) * req.PerPage)
		}
	}

	return q
}

// AddJoin appends j to the plan.
func (q *UserQuery) AddJoin(j Join) {
	q.Joins = append(q.Joins, j)
}

// AddWhere appends a predicate; predicates are AND-ed.
func (q *UserQuery) AddWhere(pred sq.Sqlizer) {
	q.Where = append(q.Where, pred)
}

// HasJoin reports whether a join with alias is already part of the plan.
func (q *UserQuery) HasJoin(alias string) bool {
	for _, j := range q.Joins {
		if j.Alias == alias {
			return true
		}
	}
	return false
}

// Builder compiles the plan into a squirrel select builder for d.
func (q *UserQuery) Builder(d Dialect) (sq.SelectBuilder, error) {
	b := sq.Select(q.Columns...).From(UsersTable)

	for _, j := range q.Joins {
		clause, args, err := j.clause()
		if err != nil {
			return sq.SelectBuilder{}, err
		}
		b = b.JoinClause(clause, args...)
	}

	for _, pred := range q.Where {
		b = b.Where(pred)
	}

	expr, err := q.Order.expr(d)
	if err != nil {
		return sq.SelectBuilder{}, err
	}
	if expr != "" {
		direction := q.Order.Direction
		if direction == "" {
			direction = Asc
		}
		b = b.OrderBy(expr + " " + string(direction))
	}

	if q.Limit > 0 {
		b = b.Limit(q.Limit)
	}
	if q.Offset > 0 {
		b = b.Offset(q.Offset)
	}

	return b, nil
}

// ToSQL compiles the plan for d.
func (q *UserQuery) ToSQL(d Dialect) (string, []any, error) {
	b, err := q.Builder(d)
	if err != nil {
		return "", nil, err
	}
	return b.PlaceholderFormat(d.Placeholder).ToSql()
}

func (j Join) clause() (string, []any, error) {
	if j.Table == "" || j.On == "" {
		return "", nil, fmt.Errorf("%w: table %q on %q", ErrIncompleteJoin, j.Table, j.On)
	}

	kind := j.Kind
	if kind == "" {
		kind = InnerJoin
	}

	target := j.Table
	if j.Alias != "" {
		target += " AS " + j.Alias
	}

	on := sq.And{sq.Expr(j.On)}
	on = append(on, j.Filters...)

	onSQL, args, err := on.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrIncompleteJoin, err)
	}

	return fmt.Sprintf("%s %s ON %s", kind, target, onSQL), args, nil
}
