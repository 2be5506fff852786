// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"strings"
	"time"
)

// GameRow holds the writable games fields.
type GameRow struct {
	Name            string
	AgeLimit        string
	PreRegistration string
	GameZone        string
	GameTime        string
}

// BuildGameInsert returns an INSERT for g that targets only columns present
// in cols. The statement returns the new id.
func BuildGameInsert(d Dialect, cols GameColumns, g GameRow, now time.Time) (string, []any) {
	names := []string{"name"}
	args := []any{g.Name}

	add := func(column string, value any) {
		if cols.Has(column) {
			names = append(names, column)
			args = append(args, value)
		}
	}
	add(ColAgeLimit, g.AgeLimit)
	add(ColPreRegistration, g.PreRegistration)
	add(ColGameZone, g.GameZone)
	add(ColGameTime, g.GameTime)
	add(ColCreatedAt, d.TimeArg(now))
	add(ColUpdatedAt, d.TimeArg(now))

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := "INSERT INTO games (" + strings.Join(names, ", ") + ") VALUES (" + placeholders + ") RETURNING id"
	return d.Rebind(query), args
}
