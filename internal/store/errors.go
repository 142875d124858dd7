// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors. Callers match them with [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when a user with the same login is
	// already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by id or login matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrUnsupportedQuery is returned by the in-memory engine for listing
	// predicates it cannot evaluate.
	ErrUnsupportedQuery = errors.New("query is not supported by storage engine")
)

// Low-level database errors.
var (
	ErrConnectingDatabase = errors.New("error connecting database")
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
