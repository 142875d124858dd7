// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResult is the outcome of a credential check performed by the host.
// It is one of [Identity], [InvalidIdentity] or [AuthError].
type AuthResult interface {
	authResult()
}

// Identity is a successfully authenticated user.
type Identity struct {
	ID    int64
	Login string
}

// InvalidIdentity is a result that does not describe a usable user,
// e.g. an anonymous or half-constructed session.
type InvalidIdentity struct {
	Reason string
}

// AuthError is a failed authentication.
type AuthError struct {
	Err error
}

func (Identity) authResult()        {}
func (InvalidIdentity) authResult() {}
func (AuthError) authResult()       {}

// Error implements error.
func (e AuthError) Error() string {
	if e.Err == nil {
		return "authentication failed"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e AuthError) Unwrap() error {
	return e.Err
}

// IdentityOf returns the identity carried by r and whether r is a valid
// [Identity]. A nil result, [InvalidIdentity] and [AuthError] all yield false.
func IdentityOf(r AuthResult) (Identity, bool) {
	switch v := r.(type) {
	case Identity:
		return v, true
	case *Identity:
		if v == nil {
			return Identity{}, false
		}
		return *v, true
	default:
		return Identity{}, false
	}
}
