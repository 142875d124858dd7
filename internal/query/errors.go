// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "errors"

var (
	// ErrIncompleteJoin is returned when a join lacks its table or condition.
	ErrIncompleteJoin = errors.New("incomplete join")
	// ErrUnknownDialect is returned when a plan needs dialect specific SQL
	// and the dialect is not one of [Postgres] or [SQLite].
	ErrUnknownDialect = errors.New("unknown sql dialect")
)
