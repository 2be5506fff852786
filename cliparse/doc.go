// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p               Server port (default 3001)
	-t               Database type, sqlite or postgres (default sqlite)
	-d               Database URL or SQLite path (default avurudu_games_2025.db)
	-admin-user      Admin username (default admin)
	-admin-password  Admin password
	-origins         Comma-separated CORS origins (default http://localhost:3000)
	-seed            Insert missing starter games on startup (default true)
	-upgrade-games   Add missing optional columns to the games table
	-migrate-from    Copy everything from a SQLite file into the configured database, then exit

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_TYPE   → -t
	DATABASE_URL    → -d
	ADMIN_USERNAME  → -admin-user
	ADMIN_PASSWORD  → -admin-password
	ALLOWED_ORIGINS → -origins
	SEED_GAMES      → -seed

CLI flags take precedence over environment variables. main loads a .env file
first, so its values act as environment variables too.

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is not provided
  - the database type is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
*/
package cliparse
