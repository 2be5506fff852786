// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Avurudu Games registration server.

Participants sign up for traditional Sinhala and Tamil New Year games through a
public form; organisers manage the games catalog and the registrant list from
an admin panel protected by basic auth.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI flags:

	ADMIN_PASSWORD=secret go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..." -admin-password secret

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): admin panel password
  - DATABASE_URL (-d): only when DATABASE_TYPE is postgres

Optional settings:

  - PORT (-p): server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_USERNAME (-admin-user): admin user (default: admin)
  - ALLOWED_ORIGINS (-origins): comma-separated CORS origins
  - SEED_GAMES (-seed): insert the starter catalog on startup (default: true)

# Maintenance

	go run . -upgrade-games                       # add missing games columns, then serve
	go run . -t postgres -d ... -migrate-from old.db   # copy a SQLite database, then exit

# Architecture

  - store: games catalog, participant registry, transactional registration
  - db: dialects, schema, column inspection, seeding, upgrades
  - handlers: HTTP handlers mapping store error kinds to status codes
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, admin gate, CORS, JSON helpers
  - metrics: Prometheus counters
  - models: request/response and domain types
  - auth: admin credential check
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
