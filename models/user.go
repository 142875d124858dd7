// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a row of the host's user table as shown in the administrative
// listing.
type User struct {
	// ID is the numeric identifier owned by the host.
	ID int64 `json:"id"`

	// Login is the unique name the user authenticates with.
	Login string `json:"login"`

	// DisplayName is the non-sensitive name shown in the listing.
	DisplayName string `json:"display_name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash checked by the host authenticator.
	// It never leaves the host.
	PasswordHash string `json:"-"`

	// RegisteredAt is when the account was created.
	RegisteredAt time.Time `json:"registered_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
