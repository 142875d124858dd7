// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UsersScreen is the screen id of the administrative user listing.
const UsersScreen = "users"

// LastLoginColumn is the column key and sort key of the last login column.
const LastLoginColumn = "last-login"

// Sort directions accepted in [ListingRequest.Order].
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Column is one column of the user listing.
type Column struct {
	Key   string
	Label string
}

// Columns is the ordered column set of the user listing.
type Columns []Column

// Set replaces the label of key when present, otherwise appends a new column.
func (c Columns) Set(key, label string) Columns {
	for i := range c {
		if c[i].Key == key {
			c[i].Label = label
			return c
		}
	}
	return append(c, Column{Key: key, Label: label})
}

// Has reports whether key is part of the column set.
func (c Columns) Has(key string) bool {
	for _, col := range c {
		if col.Key == key {
			return true
		}
	}
	return false
}

// ListingRequest carries the raw request parameters of a listing render.
type ListingRequest struct {
	// Screen is the id of the admin screen being rendered.
	Screen string
	// OrderBy is the requested sort key (e.g. "last-login").
	OrderBy string
	// Order is the requested direction, "ASC" or "DESC".
	Order string
	// Page is 1-based; zero means the first page.
	Page int
	// PerPage is the page size; zero means unlimited.
	PerPage int
}

// Row is one rendered line of the user listing.
type Row struct {
	UserID int64
	Cells  map[string]string
}

// Table is a rendered user listing.
type Table struct {
	Columns Columns
	Rows    []Row
}
