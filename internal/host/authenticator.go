// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/store"
	"github.com/MKhiriev/store-last-login/models"
)

// Authenticator checks login/password pairs against bcrypt hashes stored in
// the user repository.
type Authenticator struct {
	users store.UserRepository

	// cost is the bcrypt work factor for new hashes.
	cost int
}

func NewAuthenticator(users store.UserRepository, cost int) *Authenticator {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Authenticator{users: users, cost: cost}
}

// HashPassword returns the bcrypt hash of password.
func (a *Authenticator) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}

// Authenticate resolves the credentials to an [models.AuthResult]. An unknown
// login is an [models.InvalidIdentity]; a wrong password or a storage failure
// is an [models.AuthError].
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) models.AuthResult {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.AuthError{Err: ErrInvalidCredentials}
	}

	user, err := a.users.FindUserByLogin(ctx, login)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Info().Str("func", "*Authenticator.Authenticate").Str("login", login).Msg("unknown login")
		return models.InvalidIdentity{Reason: "unknown login"}
	case err != nil:
		log.Err(err).Str("func", "*Authenticator.Authenticate").Str("login", login).Msg("user search by login failed")
		return models.AuthError{Err: err}
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Info().Str("func", "*Authenticator.Authenticate").Int64("id", user.ID).Msg("wrong password")
		return models.AuthError{Err: ErrWrongPassword}
	}

	return models.Identity{ID: user.ID, Login: user.Login}
}
