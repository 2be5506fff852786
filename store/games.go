// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/metrics"
	"github.com/danielhkuo/avurudu-games/models"
)

// GameCatalog owns writes to the games table.
type GameCatalog struct {
	c *Client
}

func NewGameCatalog(c *Client) *GameCatalog {
	return &GameCatalog{c: c}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// List returns every game ordered by name.
func (s *GameCatalog) List(ctx context.Context) ([]models.Game, error) {
	const op = "list games"
	cols := s.c.GameColumns()

	rows, err := s.c.conn.QueryContext(ctx, "SELECT "+gameSelectList(cols)+" FROM games ORDER BY name ASC")
	if err != nil {
		return nil, logFailure(storeFailure(op, "failed to query games", err))
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		g, err := s.scanGame(rows, cols)
		if err != nil {
			return nil, logFailure(storeFailure(op, "failed to scan game", err))
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, logFailure(storeFailure(op, "failed to read games", err))
	}
	return games, nil
}

// Get returns one game by id.
func (s *GameCatalog) Get(ctx context.Context, id int64) (models.Game, error) {
	g, err := s.get(ctx, s.c.conn, "get game", id)
	if err != nil {
		return models.Game{}, logFailure(err)
	}
	return g, nil
}

// Create inserts a game. Only name is required; other fields get defaults.
func (s *GameCatalog) Create(ctx context.Context, req models.CreateGameRequest) (models.Game, error) {
	const op = "create game"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Game{}, s.record("create", invalidInput(op, "Game name is required"))
	}

	row := db.GameRow{
		Name:            name,
		AgeLimit:        orDefault(req.AgeLimit, models.DefaultAgeLimit),
		PreRegistration: orDefault(req.PreRegistration, models.DefaultPreRegistration),
		GameZone:        req.GameZone,
		GameTime:        req.GameTime,
	}
	cols := s.c.GameColumns()

	var game models.Game
	err := s.c.inTx(ctx, op, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkNameFree(ctx, tx, op, name, 0); err != nil {
			return err
		}

		query, args := db.BuildGameInsert(s.c.dialect, cols, row, s.c.now())
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if s.c.dialect.IsUniqueViolation(err) {
				return nameTaken(op, name)
			}
			return storeFailure(op, "failed to insert game", err)
		}

		var err error
		game, err = s.get(ctx, tx, op, id)
		return err
	})
	if err != nil {
		return models.Game{}, s.record("create", err)
	}

	s.record("create", nil)
	slog.Info("game created", "game_id", game.ID, "name", game.Name)
	return game, nil
}

// Update applies a partial update. Supplied fields whose column does not
// exist in this database are ignored; updated_at is always refreshed when present.
func (s *GameCatalog) Update(ctx context.Context, id int64, req models.UpdateGameRequest) (models.Game, error) {
	const op = "update game"

	if req.Empty() {
		return models.Game{}, s.record("update", invalidInput(op, "At least one field to update is required"))
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return models.Game{}, s.record("update", invalidInput(op, "Game name cannot be empty"))
	}

	cols := s.c.GameColumns()
	var sets []string
	var args []any
	var newName string
	if req.Name != nil {
		newName = strings.TrimSpace(*req.Name)
		sets = append(sets, "name = ?")
		args = append(args, newName)
	}
	set := func(column string, value *string) {
		if value != nil && cols.Has(column) {
			sets = append(sets, column+" = ?")
			args = append(args, *value)
		}
	}
	set(db.ColAgeLimit, req.AgeLimit)
	set(db.ColPreRegistration, req.PreRegistration)
	set(db.ColGameZone, req.GameZone)
	set(db.ColGameTime, req.GameTime)

	if len(sets) == 0 {
		return models.Game{}, s.record("update", invalidInput(op, "None of the supplied fields exist in the games table"))
	}
	if cols.UpdatedAt {
		sets = append(sets, "updated_at = ?")
		args = append(args, s.c.dialect.TimeArg(s.c.now()))
	}
	args = append(args, id)
	query := s.c.q("UPDATE games SET " + strings.Join(sets, ", ") + " WHERE id = ?")

	var game models.Game
	err := s.c.inTx(ctx, op, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.exists(ctx, tx, op, id); err != nil {
			return err
		}
		if req.Name != nil {
			if err := s.checkNameFree(ctx, tx, op, newName, id); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if s.c.dialect.IsUniqueViolation(err) {
				return nameTaken(op, newName)
			}
			return storeFailure(op, "failed to update game", err)
		}

		var err error
		game, err = s.get(ctx, tx, op, id)
		return err
	})
	if err != nil {
		return models.Game{}, s.record("update", err)
	}

	s.record("update", nil)
	slog.Info("game updated", "game_id", id, "fields", len(sets))
	return game, nil
}

// Delete removes a game that no participant is registered for.
func (s *GameCatalog) Delete(ctx context.Context, id int64) (int64, error) {
	const op = "delete game"

	err := s.c.inTx(ctx, op, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.exists(ctx, tx, op, id); err != nil {
			return err
		}

		var count int64
		err := tx.QueryRowContext(ctx,
			s.c.q(`SELECT COUNT(*) FROM participant_games WHERE game_id = ?`), id,
		).Scan(&count)
		if err != nil {
			return storeFailure(op, "failed to count game registrations", err)
		}
		if count > 0 {
			return conflict(op,
				fmt.Sprintf("Cannot delete game as it is associated with %d participants", count),
				map[string]string{"participants": strconv.FormatInt(count, 10)},
			)
		}

		if _, err := tx.ExecContext(ctx, s.c.q(`DELETE FROM games WHERE id = ?`), id); err != nil {
			return storeFailure(op, "failed to delete game", err)
		}
		return nil
	})
	if err != nil {
		return 0, s.record("delete", err)
	}

	s.record("delete", nil)
	slog.Info("game deleted", "game_id", id)
	return id, nil
}

// resolve maps game names to ids. Names with no game are returned in missing,
// in input order.
func (s *GameCatalog) resolve(ctx context.Context, q queryer, names []string) (map[string]int64, []string, error) {
	ids := make(map[string]int64, len(names))
	if len(names) == 0 {
		return ids, nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := q.QueryContext(ctx, s.c.q("SELECT id, name FROM games WHERE name IN ("+placeholders+")"), args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, err
		}
		ids[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := ids[name]; !ok {
			missing = append(missing, name)
		}
	}
	return ids, missing, nil
}

func (s *GameCatalog) get(ctx context.Context, q queryer, op string, id int64) (models.Game, error) {
	cols := s.c.GameColumns()
	row := q.QueryRowContext(ctx, s.c.q("SELECT "+gameSelectList(cols)+" FROM games WHERE id = ?"), id)
	g, err := s.scanGame(row, cols)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Game{}, notFound(op, "Game not found")
	}
	if err != nil {
		return models.Game{}, storeFailure(op, "failed to query game", err)
	}
	return g, nil
}

func (s *GameCatalog) exists(ctx context.Context, q queryer, op string, id int64) error {
	var found bool
	err := q.QueryRowContext(ctx, s.c.q(`SELECT EXISTS(SELECT 1 FROM games WHERE id = ?)`), id).Scan(&found)
	if err != nil {
		return storeFailure(op, "failed to query game", err)
	}
	if !found {
		return notFound(op, "Game not found")
	}
	return nil
}

// checkNameFree fails with a conflict if a game other than exceptID has name.
func (s *GameCatalog) checkNameFree(ctx context.Context, q queryer, op, name string, exceptID int64) error {
	var taken bool
	err := q.QueryRowContext(ctx,
		s.c.q(`SELECT EXISTS(SELECT 1 FROM games WHERE name = ? AND id <> ?)`), name, exceptID,
	).Scan(&taken)
	if err != nil {
		return storeFailure(op, "failed to check game name", err)
	}
	if taken {
		return nameTaken(op, name)
	}
	return nil
}

func (s *GameCatalog) scanGame(row rowScanner, cols db.GameColumns) (models.Game, error) {
	var g models.Game
	dest := []any{&g.ID, &g.Name}

	text := make(map[string]*sql.NullString, 4)
	var createdAt, updatedAt any
	for _, col := range cols.Present() {
		switch col {
		case db.ColCreatedAt:
			dest = append(dest, &createdAt)
		case db.ColUpdatedAt:
			dest = append(dest, &updatedAt)
		default:
			ns := new(sql.NullString)
			text[col] = ns
			dest = append(dest, ns)
		}
	}
	if err := row.Scan(dest...); err != nil {
		return models.Game{}, err
	}

	g.AgeLimit = nullOr(text[db.ColAgeLimit], models.DefaultAgeLimit)
	g.PreRegistration = nullOr(text[db.ColPreRegistration], models.DefaultPreRegistration)
	g.GameZone = nullOr(text[db.ColGameZone], "")
	g.GameTime = nullOr(text[db.ColGameTime], "")

	var ok bool
	if g.CreatedAt, ok = db.ParseTimestamp(createdAt); !ok {
		g.CreatedAt = s.c.now().UTC()
	}
	if g.UpdatedAt, ok = db.ParseTimestamp(updatedAt); !ok {
		g.UpdatedAt = g.CreatedAt
	}
	return g, nil
}

func (s *GameCatalog) record(op string, err error) error {
	metrics.GameMutations.WithLabelValues(op, outcome(err)).Inc()
	return logFailure(err)
}

func gameSelectList(cols db.GameColumns) string {
	return strings.Join(append([]string{"id", "name"}, cols.Present()...), ", ")
}

func nameTaken(op, name string) *Error {
	return conflict(op, "A game with this name already exists", map[string]string{"name": name})
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func nullOr(ns *sql.NullString, def string) string {
	if ns == nil || !ns.Valid || ns.String == "" {
		return def
	}
	return ns.String
}

// logFailure logs store failures; caller mistakes are left to the HTTP layer.
func logFailure(err error) error {
	if err != nil && KindOf(err) == KindStore {
		slog.Error("store operation failed", "error", err)
	}
	return err
}
