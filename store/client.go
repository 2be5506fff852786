// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/avurudu-games/db"
)

// Client owns the database handle shared by GameCatalog and ParticipantRegistry.
type Client struct {
	conn    *sql.DB
	dialect db.Dialect
	games   atomic.Pointer[db.GameColumns]
	keys    atomic.Pointer[db.ParticipantKeys]
	seed    []db.GameRow
	now     func() time.Time
	newID   func() (string, error)
}

// Option configures a Client.
type Option func(*Client)

// WithStarterCatalog makes EnsureSchema insert games that are not already present.
func WithStarterCatalog(games []db.GameRow) Option {
	return func(c *Client) { c.seed = games }
}

// WithClock overrides the time source for assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithIDGenerator overrides participant identity generation.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(c *Client) { c.newID = gen }
}

// New wraps an open connection. Call EnsureSchema before serving requests.
func New(conn *sql.DB, dialect db.Dialect, opts ...Option) *Client {
	c := &Client{
		conn:    conn,
		dialect: dialect,
		now:     time.Now,
		newID:   newParticipantID,
	}
	for _, opt := range opts {
		opt(c)
	}
	cols := db.AllGameColumns
	c.games.Store(&cols)
	c.keys.Store(&db.ParticipantKeys{})
	return c
}

// newParticipantID returns a time-ordered UUID.
func newParticipantID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// DB returns the underlying handle.
func (c *Client) DB() *sql.DB { return c.conn }

// Dialect returns the backend dialect.
func (c *Client) Dialect() db.Dialect { return c.dialect }

// GameColumns returns the games column descriptor read at the last refresh.
func (c *Client) GameColumns() db.GameColumns { return *c.games.Load() }

// ParticipantKeys returns the participants id descriptor read at the last refresh.
func (c *Client) ParticipantKeys() db.ParticipantKeys { return *c.keys.Load() }

// EnsureSchema creates missing tables, seeds the starter catalog if one was
// configured, and reads the games column set. Idempotent.
func (c *Client) EnsureSchema(ctx context.Context) error {
	const op = "ensure schema"
	if err := db.EnsureSchema(ctx, c.conn, c.dialect); err != nil {
		return &Error{Kind: KindInitialization, Op: op, Message: "failed to create tables", Err: err}
	}
	if err := c.RefreshCapabilities(ctx); err != nil {
		return err
	}
	if len(c.seed) > 0 {
		n, err := db.SeedGames(ctx, c.conn, c.dialect, c.GameColumns(), c.seed)
		if err != nil {
			return &Error{Kind: KindInitialization, Op: op, Message: "failed to seed games", Err: err}
		}
		if n > 0 {
			slog.Info("starter games seeded", "inserted", n)
		}
	}
	return nil
}

// RefreshCapabilities re-reads the games column set and the participants
// id type.
func (c *Client) RefreshCapabilities(ctx context.Context) error {
	cols, err := db.InspectGames(ctx, c.conn, c.dialect)
	if err != nil {
		kind := KindStore
		if errors.Is(err, db.ErrNoGamesTable) {
			kind = KindInitialization
		}
		return &Error{Kind: kind, Op: "inspect games", Message: "failed to read games columns", Err: err}
	}

	keys, err := db.InspectParticipants(ctx, c.conn, c.dialect)
	if err != nil {
		kind := KindStore
		if errors.Is(err, db.ErrNoParticipantsTable) {
			kind = KindInitialization
		}
		return &Error{Kind: kind, Op: "inspect participants", Message: "failed to read participants id column", Err: err}
	}

	c.games.Store(&cols)
	c.keys.Store(&keys)
	if missing := cols.Missing(); len(missing) > 0 {
		slog.Warn("games table is missing optional columns", "missing", missing)
	}
	if keys.IntegerID {
		slog.Info("participants table uses database-assigned integer ids")
	}
	return nil
}

// UpgradeGames adds missing optional games columns and refreshes the descriptor.
func (c *Client) UpgradeGames(ctx context.Context) ([]string, error) {
	added, err := db.UpgradeGames(ctx, c.conn, c.dialect)
	if err != nil {
		return added, &Error{Kind: KindStore, Op: "upgrade games", Message: "failed to add games columns", Err: err}
	}
	return added, c.RefreshCapabilities(ctx)
}

// Close closes the database handle.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// q rebinds a query for the client's dialect.
func (c *Client) q(query string) string {
	return c.dialect.Rebind(query)
}
