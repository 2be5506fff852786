// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, dialects and schema management.

# Dialects

Two backends are supported, SQLite (modernc.org/sqlite) and PostgreSQL
(github.com/lib/pq). Queries are written with ? placeholders and passed
through Dialect.Rebind:

	conn, err := db.Open(ctx, db.SQLite, "avurudu_games_2025.db")
	row := conn.QueryRowContext(ctx, d.Rebind("SELECT id FROM games WHERE name = ?"), name)

# Schema Creation

EnsureSchema initializes all required tables:

	if err := db.EnsureSchema(ctx, conn, d); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Existing tables are never altered.

# Tables

	participants 1──* participant_games *──1 games

participant_games has a composite primary key and both foreign keys use
ON DELETE CASCADE.

# Older Games Tables

Databases created by earlier releases may have a games table with only
id and name. InspectGames reports which optional columns exist; callers
build their queries from the returned GameColumns. UpgradeGames adds the
missing columns without touching existing data.

# Seeding

SeedGames installs StarterGames, skipping any name already present.
*/
package db
