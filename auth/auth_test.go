// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestAdminCheck(t *testing.T) {
	admin := NewAdmin("admin", "s3cret")

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"valid", "admin", "s3cret", nil},
		{"wrong password", "admin", "wrong", ErrInvalidCredentials},
		{"wrong username", "root", "s3cret", ErrInvalidCredentials},
		{"username case matters", "Admin", "s3cret", ErrInvalidCredentials},
		{"password prefix", "admin", "s3cre", ErrInvalidCredentials},
		{"empty", "", "", ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := admin.Check(tt.username, tt.password)
			if !errors.Is(err, tt.want) {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.username, tt.password, err, tt.want)
			}
		})
	}
}

func TestAdminEmptyPasswordNeverMatchesMissing(t *testing.T) {
	admin := NewAdmin("admin", "")

	if err := admin.Check("", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Check with no credentials = %v, want ErrMissingCredentials", err)
	}
	if err := admin.Check("admin", ""); err != nil {
		t.Errorf("Check(admin, \"\") = %v, want nil", err)
	}
}
