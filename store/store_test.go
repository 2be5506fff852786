// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/models"
)

// openTempClient opens a file-backed SQLite client with the given starter games.
func openTempClient(t *testing.T, games ...string) *Client {
	t.Helper()
	conn := openTempDB(t)

	seed := make([]db.GameRow, 0, len(games))
	for _, name := range games {
		seed = append(seed, db.GameRow{Name: name, AgeLimit: models.DefaultAgeLimit, PreRegistration: "Y"})
	}

	client := New(conn, db.SQLite, WithStarterCatalog(seed), WithClock(steppingClock()))
	if err := client.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return client
}

// originalTables is the schema written by the first release, with integer
// participant ids and no optional games columns.
var originalTables = []string{
	`CREATE TABLE participants (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    contact_number TEXT NOT NULL,
    age_group TEXT NOT NULL,
    registration_date DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE participant_games (
    participant_id INTEGER,
    game_id INTEGER,
    PRIMARY KEY (participant_id, game_id),
    FOREIGN KEY (participant_id) REFERENCES participants (id) ON DELETE CASCADE,
    FOREIGN KEY (game_id) REFERENCES games (id) ON DELETE CASCADE
)`,
}

// openOriginalClient opens a client over a database built with originalTables.
func openOriginalClient(t *testing.T, games ...string) *Client {
	t.Helper()
	conn := openTempDB(t)
	for _, stmt := range originalTables {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("create original table: %v", err)
		}
	}

	seed := make([]db.GameRow, 0, len(games))
	for _, name := range games {
		seed = append(seed, db.GameRow{Name: name})
	}
	client := New(conn, db.SQLite, WithStarterCatalog(seed), WithClock(steppingClock()))
	if err := client.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return client
}

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avurudu.db")
	conn, err := db.Open(context.Background(), db.SQLite, path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// steppingClock returns strictly increasing times so registration order is deterministic.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	ts := time.Date(2025, 4, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		ts = ts.Add(time.Second)
		return ts
	}
}

func stores(c *Client) (*GameCatalog, *ParticipantRegistry) {
	games := NewGameCatalog(c)
	return games, NewParticipantRegistry(c, games)
}

func countRows(t *testing.T, c *Client, table string) int {
	t.Helper()
	var n int
	if err := c.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func gameID(t *testing.T, games *GameCatalog, name string) int64 {
	t.Helper()
	list, err := games.List(context.Background())
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	for _, g := range list {
		if g.Name == name {
			return g.ID
		}
	}
	t.Fatalf("game %q not found", name)
	return 0
}

func registration(first string, games ...string) models.RegistrationRequest {
	return models.RegistrationRequest{
		FirstName:     first,
		LastName:      "Doe",
		ContactNumber: "0211234567",
		AgeGroup:      "Under 12",
		SelectedGames: games,
	}
}

func strPtr(s string) *string { return &s }
