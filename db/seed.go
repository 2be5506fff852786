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

// StarterGames is the catalog installed on first boot.
var StarterGames = []GameRow{
	{Name: "Kotta Pora (Pillow Fighting)", AgeLimit: "Under 12", PreRegistration: "Y", GameZone: "Zone A", GameTime: "10:00 AM"},
	{Name: "Kana Mutti (Pot Breaking)", AgeLimit: "All Ages", PreRegistration: "Y", GameZone: "Zone B", GameTime: "11:00 AM"},
	{Name: "Banis Kaema (Bun Eating)", AgeLimit: "All Ages", PreRegistration: "Y", GameZone: "Zone C", GameTime: "12:00 PM"},
	{Name: "Lissana Gaha Nageema (Greasy Pole Climbing)", AgeLimit: "Adult (Over 16)", PreRegistration: "N", GameZone: "Zone D", GameTime: "1:00 PM"},
	{Name: "Aliyata Aha Thaebeema (Feeding the Elephant)", AgeLimit: "All Ages", PreRegistration: "N", GameZone: "Zone A", GameTime: "2:00 PM"},
	{Name: "Kamba Adeema (Tug of War)", AgeLimit: "Adult (Over 16)", PreRegistration: "Y", GameZone: "Zone D", GameTime: "3:00 PM"},
	{Name: "Coconut Scraping", AgeLimit: "Adult (Over 16)", PreRegistration: "Y", GameZone: "Zone B", GameTime: "4:00 PM"},
	{Name: "Lime and Spoon Race", AgeLimit: "All Ages", PreRegistration: "Y", GameZone: "Zone C", GameTime: "5:00 PM"},
}

// SeedGames inserts every game whose name is not already in the catalog.
// Existing rows are never modified. Returns the number of rows inserted.
func SeedGames(ctx context.Context, conn *sql.DB, d Dialect, cols GameColumns, games []GameRow) (int, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	inserted := 0
	for _, g := range games {
		var exists bool
		err := tx.QueryRowContext(ctx,
			d.Rebind(`SELECT EXISTS(SELECT 1 FROM games WHERE name = ?)`), g.Name,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("check game %q: %w", g.Name, err)
		}
		if exists {
			continue
		}

		query, args := BuildGameInsert(d, cols, g, now)
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert game %q: %w", g.Name, err)
		}
		slog.Info("added game", "game_id", id, "name", g.Name)
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return inserted, nil
}
