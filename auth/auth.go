// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Admin holds the digests of the configured admin username and password.
// The plain password is not kept after construction.
type Admin struct {
	user [sha256.Size]byte
	pass [sha256.Size]byte
}

// NewAdmin returns an Admin for the given credentials.
func NewAdmin(username, password string) *Admin {
	return &Admin{
		user: sha256.Sum256([]byte(username)),
		pass: sha256.Sum256([]byte(password)),
	}
}

// Check compares the supplied credentials in constant time.
// Both fields are always compared so timing does not reveal which one was wrong.
func (a *Admin) Check(username, password string) error {
	if username == "" && password == "" {
		return ErrMissingCredentials
	}
	u := sha256.Sum256([]byte(username))
	p := sha256.Sum256([]byte(password))

	userOK := hmac.Equal(u[:], a.user[:])
	passOK := hmac.Equal(p[:], a.pass[:])
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
