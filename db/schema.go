// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// EnsureSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS and never alters existing tables.
func EnsureSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	tables := sqliteTables
	if d == Postgres {
		tables = postgresTables
	}
	for _, stmt := range tables {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	// Indexes on tables from older releases may not build (duplicate names
	// in a legacy games table); the tables are still usable without them.
	for _, stmt := range indexes {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			slog.Warn("index creation skipped", "statement", stmt, "error", err)
		}
	}
	return nil
}

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    contact_number TEXT NOT NULL,
    age_group TEXT NOT NULL,
    registration_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    age_limit TEXT,
    pre_registration TEXT,
    game_zone TEXT,
    game_time TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS participant_games (
    participant_id TEXT NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    PRIMARY KEY (participant_id, game_id)
)`,
}

var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    contact_number TEXT NOT NULL,
    age_group TEXT NOT NULL,
    registration_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS games (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    age_limit TEXT,
    pre_registration TEXT,
    game_zone TEXT,
    game_time TEXT,
    created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS participant_games (
    participant_id TEXT NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    PRIMARY KEY (participant_id, game_id)
)`,
}

var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_games_name ON games(name)`,
	`CREATE INDEX IF NOT EXISTS idx_participant_games_game_id ON participant_games(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_registration_date ON participants(registration_date)`,
}
