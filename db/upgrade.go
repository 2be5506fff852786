// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// UpgradeGames adds any optional column missing from the games table.
// Columns are only ever added. Returns the names of the added columns.
func UpgradeGames(ctx context.Context, conn *sql.DB, d Dialect) ([]string, error) {
	cols, err := InspectGames(ctx, conn, d)
	if err != nil {
		return nil, err
	}

	missing := cols.Missing()
	if len(missing) == 0 {
		return nil, nil
	}

	// SQLite rejects non-constant defaults in ADD COLUMN, so existing rows
	// get the upgrade time as a literal.
	now := time.Now().UTC().Format(sqliteTimeLayout)

	var added []string
	for _, col := range missing {
		def := "TEXT"
		if col == ColCreatedAt || col == ColUpdatedAt {
			if d == Postgres {
				def = "TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP"
			} else {
				def = "DATETIME DEFAULT '" + now + "'"
			}
		}
		stmt := "ALTER TABLE games ADD COLUMN " + col + " " + def
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return added, fmt.Errorf("add games column %s: %w", col, err)
		}
		slog.Info("added games column", "column", col)
		added = append(added, col)
	}
	return added, nil
}
