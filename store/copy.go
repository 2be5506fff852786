// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/models"
)

// CopyReport summarizes a CopyAll run.
type CopyReport struct {
	Games        int // games inserted into the destination
	Participants int // participants registered in the destination
	Skipped      int // participants already present in the destination
	Failed       int // participants that could not be registered
}

// CopyAll copies the games catalog and every participant from src into dst.
// Games are inserted only when no game of that name exists. Participants keep
// their registration date, and their identity when the destination can hold
// it, and go through the normal registration workflow, oldest first. A
// participant that fails is logged and counted.
func CopyAll(ctx context.Context, src, dst *Client) (CopyReport, error) {
	var report CopyReport

	srcGames := NewGameCatalog(src)
	dstGames := NewGameCatalog(dst)

	games, err := srcGames.List(ctx)
	if err != nil {
		return report, err
	}
	for _, g := range games {
		_, err := dstGames.Create(ctx, models.CreateGameRequest{
			Name:            g.Name,
			AgeLimit:        g.AgeLimit,
			PreRegistration: g.PreRegistration,
			GameZone:        g.GameZone,
			GameTime:        g.GameTime,
		})
		switch {
		case err == nil:
			report.Games++
		case errors.Is(err, ErrConflict):
			slog.Debug("game already present", "name", g.Name)
		default:
			return report, err
		}
	}

	participants, err := NewParticipantRegistry(src, srcGames).List(ctx)
	if err != nil {
		return report, err
	}
	registry := NewParticipantRegistry(dst, dstGames)

	// List is newest first.
	for i := len(participants) - 1; i >= 0; i-- {
		p := participants[i]
		if err := ctx.Err(); err != nil {
			return report, err
		}

		// Text ids cannot be kept in an integer-keyed destination.
		id := p.ID
		if _, ok := dst.ParticipantKeys().Arg(id); !ok {
			id = ""
		}

		_, err := registry.register(ctx, models.RegistrationRequest{
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			ContactNumber: p.ContactNumber,
			AgeGroup:      p.AgeGroup,
			SelectedGames: p.Games,
		}, id, p.RegistrationDate)
		switch {
		case err == nil:
			report.Participants++
		case errors.Is(err, ErrConflict):
			report.Skipped++
		default:
			report.Failed++
			slog.Warn("participant not copied", "participant_id", p.ID, "error", err)
		}
	}

	if report.Participants > 0 {
		if err := syncParticipantSequence(ctx, dst); err != nil {
			return report, err
		}
	}

	slog.Info("copy complete",
		"games", report.Games,
		"participants", report.Participants,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

// syncParticipantSequence moves a Postgres serial past explicitly inserted
// ids so later registrations do not collide with copied rows.
func syncParticipantSequence(ctx context.Context, c *Client) error {
	if c.dialect != db.Postgres || !c.ParticipantKeys().IntegerID {
		return nil
	}
	_, err := c.conn.ExecContext(ctx, `
		SELECT setval(pg_get_serial_sequence('participants', 'id'),
		              (SELECT COALESCE(MAX(id), 0) + 1 FROM participants), false)`)
	if err != nil {
		return storeFailure("copy participants", "failed to advance participant id sequence", err)
	}
	return nil
}
