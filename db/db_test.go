// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
)

func openTempSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(context.Background(), SQLite, filepath.Join(t.TempDir(), "db_test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"sqlite", SQLite, false},
		{"SQLite3", SQLite, false},
		{" postgres ", Postgres, false},
		{"postgresql", Postgres, false},
		{"pg", Postgres, false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDialect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDialect(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT id FROM games WHERE name = ? AND id <> ?"

	if got := SQLite.Rebind(query); got != query {
		t.Errorf("SQLite.Rebind() = %q, want unchanged", got)
	}
	want := "SELECT id FROM games WHERE name = $1 AND id <> $2"
	if got := Postgres.Rebind(query); got != want {
		t.Errorf("Postgres.Rebind() = %q, want %q", got, want)
	}
}

func TestTimeArg(t *testing.T) {
	ts := time.Date(2025, 4, 14, 9, 5, 3, 120, time.FixedZone("IST", 5*3600+1800))

	got, ok := SQLite.TimeArg(ts).(string)
	if !ok {
		t.Fatalf("SQLite.TimeArg() type = %T, want string", SQLite.TimeArg(ts))
	}
	if got != "2025-04-14T03:35:03.000000120Z" {
		t.Errorf("SQLite.TimeArg() = %q", got)
	}

	pgArg, ok := Postgres.TimeArg(ts).(time.Time)
	if !ok || !pgArg.Equal(ts) || pgArg.Location() != time.UTC {
		t.Errorf("Postgres.TimeArg() = %v", Postgres.TimeArg(ts))
	}
}

func TestSQLiteTimeTextSortsChronologically(t *testing.T) {
	early := SQLite.TimeArg(time.Date(2025, 4, 14, 9, 0, 0, 0, time.UTC)).(string)
	late := SQLite.TimeArg(time.Date(2025, 4, 14, 9, 0, 0, 500_000_000, time.UTC)).(string)
	if !(early < late) {
		t.Errorf("expected %q < %q", early, late)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	conn := openTempSQLite(t)
	if _, err := conn.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT UNIQUE, parent INTEGER NOT NULL)`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO t (id, name, parent) VALUES (1, 'a', 0)`); err != nil {
		t.Fatal(err)
	}

	_, uniqueErr := conn.Exec(`INSERT INTO t (id, name, parent) VALUES (2, 'a', 0)`)
	_, pkErr := conn.Exec(`INSERT INTO t (id, name, parent) VALUES (1, 'b', 0)`)
	_, notNullErr := conn.Exec(`INSERT INTO t (id, name) VALUES (3, 'c')`)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("UNIQUE constraint failed"), false},
		{"sqlite unique", uniqueErr, true},
		{"sqlite primary key", pkErr, true},
		{"sqlite not null", notNullErr, false},
		{"wrapped sqlite unique", fmt.Errorf("insert: %w", uniqueErr), true},
		{"postgres unique", &pq.Error{Code: "23505"}, true},
		{"postgres fk", &pq.Error{Code: "23503"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQLite.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	conn := openTempSQLite(t)
	for _, stmt := range []string{
		`CREATE TABLE parent (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE child (parent_id INTEGER NOT NULL REFERENCES parent(id), name TEXT UNIQUE)`,
		`INSERT INTO parent (id) VALUES (1)`,
		`INSERT INTO child (parent_id, name) VALUES (1, 'a')`,
	} {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}

	_, fkErr := conn.Exec(`INSERT INTO child (parent_id, name) VALUES (99, 'b')`)
	_, uniqueErr := conn.Exec(`INSERT INTO child (parent_id, name) VALUES (1, 'a')`)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sqlite foreign key", fkErr, true},
		{"wrapped sqlite foreign key", fmt.Errorf("associate: %w", fkErr), true},
		{"sqlite unique", uniqueErr, false},
		{"postgres fk", &pq.Error{Code: "23503"}, true},
		{"postgres unique", &pq.Error{Code: "23505"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQLite.IsForeignKeyViolation(tt.err); got != tt.want {
				t.Errorf("IsForeignKeyViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), SQLite, "  "); err == nil {
		t.Error("expected error for empty DSN")
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"games.db", "games.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{":memory:", ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:games.db?cache=shared", "file:games.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
	}

	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
