// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks admin credentials.

The admin panel is protected by a single username and password taken from
configuration:

	admin := auth.NewAdmin(cfg.AdminUser, cfg.AdminPassword)
	if err := admin.Check(user, pass); err != nil {
		// ErrMissingCredentials or ErrInvalidCredentials
	}

Only SHA-256 digests are stored. Check hashes the supplied values and compares
both digests with hmac.Equal, so the comparison takes the same time whichever
field is wrong and whatever the input lengths.
*/
package auth
