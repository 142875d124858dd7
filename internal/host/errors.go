// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "errors"

var (
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidCredentials = errors.New("login and password are required")
	ErrHashingPassword    = errors.New("error hashing password")
	ErrListingUsers       = errors.New("error listing users")
	ErrRenderingProfile   = errors.New("error rendering profile")
)
