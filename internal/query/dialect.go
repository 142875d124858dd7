// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect is the SQL flavour a plan is compiled for.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat

	// number renders an expression reading a text column as an integer,
	// NULL when the text is not a number in the int64 range.
	number func(column string) string
}

// Bounds of int64 as SQL literals.
const (
	minInt64Literal = "-9223372036854775808"
	maxInt64Literal = "9223372036854775808"
)

// postgresNumber is the shape of a decimal number with an optional fraction and
// exponent. The pattern avoids "?" so squirrel leaves it alone.
const postgresNumber = `^[-+]{0,1}([0-9]+(\.[0-9]*){0,1}|\.[0-9]+)([eE][-+]{0,1}[0-9]+){0,1}$`

var (
	Postgres = Dialect{
		Name:        "pgx",
		Placeholder: sq.Dollar,
		number: func(column string) string {
			n := "CAST(" + column + " AS NUMERIC)"
			// nested CASE keeps the cast away from text that is not a number
			return fmt.Sprintf("CASE WHEN %s ~ '%s' THEN CASE WHEN %s >= %s AND %s < %s THEN TRUNC(%s) END END",
				column, postgresNumber, n, minInt64Literal, n, maxInt64Literal, n)
		},
	}

	SQLite = Dialect{
		Name:        "sqlite3",
		Placeholder: sq.Question,
		number: func(column string) string {
			n := "CAST(" + column + " AS REAL)"
			return fmt.Sprintf("CASE WHEN %s GLOB '*[0-9]*' AND %s NOT GLOB '*[^0-9.eE+-]*' AND %s >= %s.0 AND %s < %s.0 THEN CAST(%s AS INTEGER) END",
				column, column, n, minInt64Literal, n, maxInt64Literal, n)
		},
	}
)

// NumberOr renders column read as an integer, or fallback when the column is
// NULL or not a number.
func (d Dialect) NumberOr(column string, fallback int64) string {
	return fmt.Sprintf("COALESCE(%s, %d)", d.number(column), fallback)
}
