// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Optional games columns added after the first release.
const (
	ColAgeLimit        = "age_limit"
	ColPreRegistration = "pre_registration"
	ColGameZone        = "game_zone"
	ColGameTime        = "game_time"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)

// OptionalGameColumns lists the optional columns in schema order.
var OptionalGameColumns = []string{
	ColAgeLimit,
	ColPreRegistration,
	ColGameZone,
	ColGameTime,
	ColCreatedAt,
	ColUpdatedAt,
}

// ErrNoGamesTable is returned when the games table does not exist.
var ErrNoGamesTable = errors.New("games table not found")

// GameColumns describes which optional columns the live games table has.
// id and name are always present.
type GameColumns struct {
	AgeLimit        bool
	PreRegistration bool
	GameZone        bool
	GameTime        bool
	CreatedAt       bool
	UpdatedAt       bool
}

// AllGameColumns is the descriptor of a table built by EnsureSchema.
var AllGameColumns = GameColumns{
	AgeLimit:        true,
	PreRegistration: true,
	GameZone:        true,
	GameTime:        true,
	CreatedAt:       true,
	UpdatedAt:       true,
}

// Has reports whether the named optional column is present.
func (c GameColumns) Has(column string) bool {
	switch column {
	case ColAgeLimit:
		return c.AgeLimit
	case ColPreRegistration:
		return c.PreRegistration
	case ColGameZone:
		return c.GameZone
	case ColGameTime:
		return c.GameTime
	case ColCreatedAt:
		return c.CreatedAt
	case ColUpdatedAt:
		return c.UpdatedAt
	}
	return false
}

// Present returns the optional columns that exist, in schema order.
func (c GameColumns) Present() []string {
	var out []string
	for _, col := range OptionalGameColumns {
		if c.Has(col) {
			out = append(out, col)
		}
	}
	return out
}

// Missing returns the optional columns that do not exist, in schema order.
func (c GameColumns) Missing() []string {
	var out []string
	for _, col := range OptionalGameColumns {
		if !c.Has(col) {
			out = append(out, col)
		}
	}
	return out
}

// InspectGames reads the column set of the games table.
func InspectGames(ctx context.Context, conn *sql.DB, d Dialect) (GameColumns, error) {
	query := `SELECT name FROM pragma_table_info('games')`
	if d == Postgres {
		query = `SELECT column_name FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'games'`
	}

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return GameColumns{}, fmt.Errorf("inspect games columns: %w", err)
	}
	defer rows.Close()

	var cols GameColumns
	found := 0
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return GameColumns{}, fmt.Errorf("scan games column: %w", err)
		}
		found++
		switch strings.ToLower(name) {
		case ColAgeLimit:
			cols.AgeLimit = true
		case ColPreRegistration:
			cols.PreRegistration = true
		case ColGameZone:
			cols.GameZone = true
		case ColGameTime:
			cols.GameTime = true
		case ColCreatedAt:
			cols.CreatedAt = true
		case ColUpdatedAt:
			cols.UpdatedAt = true
		}
	}
	if err := rows.Err(); err != nil {
		return GameColumns{}, fmt.Errorf("inspect games columns: %w", err)
	}
	if found == 0 {
		return GameColumns{}, ErrNoGamesTable
	}
	return cols, nil
}

// ErrNoParticipantsTable is returned when participants has no id column.
var ErrNoParticipantsTable = errors.New("participants table not found")

// ParticipantKeys describes how the live participants table identifies rows.
// Tables from the first release use a database-assigned integer id.
type ParticipantKeys struct {
	IntegerID bool
}

// Arg converts a participant id to a query argument for the id column.
// ok is false when the column is integer and id is not a number, in which
// case no row can match.
func (k ParticipantKeys) Arg(id string) (arg any, ok bool) {
	if !k.IntegerID {
		return id, true
	}
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

// InspectParticipants reads the declared type of participants.id.
func InspectParticipants(ctx context.Context, conn *sql.DB, d Dialect) (ParticipantKeys, error) {
	query := `SELECT type FROM pragma_table_info('participants') WHERE name = 'id'`
	if d == Postgres {
		query = `SELECT data_type FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'participants' AND column_name = 'id'`
	}

	var declared string
	err := conn.QueryRowContext(ctx, query).Scan(&declared)
	if errors.Is(err, sql.ErrNoRows) {
		return ParticipantKeys{}, ErrNoParticipantsTable
	}
	if err != nil {
		return ParticipantKeys{}, fmt.Errorf("inspect participants id: %w", err)
	}
	// SQLite gives any declared type containing INT integer affinity.
	return ParticipantKeys{IntegerID: strings.Contains(strings.ToUpper(declared), "INT")}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp normalizes a scanned timestamp value. Drivers return
// time.Time, text in several layouts, or unix seconds depending on how the
// column was declared and written.
func ParseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case int64:
		return time.Unix(t, 0).UTC(), true
	case []byte:
		return ParseTimestamp(string(t))
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
