// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/metrics"
	"github.com/danielhkuo/avurudu-games/models"
)

// ParticipantRegistry owns writes to participants and participant_games.
// Game names are resolved through the GameCatalog.
type ParticipantRegistry struct {
	c     *Client
	games *GameCatalog
}

func NewParticipantRegistry(c *Client, games *GameCatalog) *ParticipantRegistry {
	return &ParticipantRegistry{c: c, games: games}
}

const participantSelect = `
	SELECT p.id, p.first_name, p.last_name, p.contact_number, p.age_group,
	       p.registration_date, g.name
	FROM participants p
	LEFT JOIN participant_games pg ON pg.participant_id = p.id
	LEFT JOIN games g ON g.id = pg.game_id`

// Register stores a participant together with every selected game, or
// nothing at all. All names are resolved before the first write.
// Integer-keyed tables get their id from the database.
func (r *ParticipantRegistry) Register(ctx context.Context, req models.RegistrationRequest) (models.Participant, error) {
	var id string
	if !r.c.ParticipantKeys().IntegerID {
		var err error
		id, err = r.c.newID()
		if err != nil {
			return models.Participant{}, r.recordRegistration(storeFailure("register participant", "failed to generate participant id", err))
		}
	}
	return r.register(ctx, req, id, r.c.now().UTC())
}

// register runs the registration workflow with a caller-chosen identity and
// timestamp. CopyAll uses it to keep source identities. An empty id lets the
// database assign one.
func (r *ParticipantRegistry) register(ctx context.Context, req models.RegistrationRequest, id string, registeredAt time.Time) (models.Participant, error) {
	const op = "register participant"

	if err := validateRegistration(op, req); err != nil {
		return models.Participant{}, r.recordRegistration(err)
	}

	err := r.c.inTx(ctx, op, func(ctx context.Context, tx *sql.Tx) error {
		gameIDs, missing, err := r.games.resolve(ctx, tx, req.SelectedGames)
		if err != nil {
			return storeFailure(op, "failed to resolve games", err)
		}
		if len(missing) > 0 {
			return &Error{
				Kind:     KindNotFound,
				Op:       op,
				Message:  "One or more selected games were not found",
				Metadata: map[string]string{"missing": strings.Join(missing, ", ")},
			}
		}

		keys := r.c.ParticipantKeys()
		if id == "" {
			err = tx.QueryRowContext(ctx, r.c.q(`
				INSERT INTO participants (first_name, last_name, contact_number, age_group, registration_date)
				VALUES (?, ?, ?, ?, ?)
				RETURNING id
			`), req.FirstName, req.LastName, req.ContactNumber, req.AgeGroup, r.c.dialect.TimeArg(registeredAt)).Scan(&id)
		} else {
			idArg, ok := keys.Arg(id)
			if !ok {
				return invalidInput(op, "Participant ID must be numeric")
			}
			_, err = tx.ExecContext(ctx, r.c.q(`
				INSERT INTO participants (id, first_name, last_name, contact_number, age_group, registration_date)
				VALUES (?, ?, ?, ?, ?, ?)
			`), idArg, req.FirstName, req.LastName, req.ContactNumber, req.AgeGroup, r.c.dialect.TimeArg(registeredAt))
		}
		if err != nil {
			if r.c.dialect.IsUniqueViolation(err) {
				return conflict(op, "Participant already exists", map[string]string{"participant_id": id})
			}
			return storeFailure(op, "failed to insert participant", err)
		}

		participantArg, _ := keys.Arg(id)
		for _, name := range req.SelectedGames {
			_, err := tx.ExecContext(ctx,
				r.c.q(`INSERT INTO participant_games (participant_id, game_id) VALUES (?, ?)`),
				participantArg, gameIDs[name],
			)
			if err != nil {
				// A concurrent deleteGame committed after the names were resolved.
				if r.c.dialect.IsForeignKeyViolation(err) {
					return &Error{
						Kind:     KindNotFound,
						Op:       op,
						Message:  "One or more selected games were not found",
						Metadata: map[string]string{"missing": name},
						Err:      err,
					}
				}
				return storeFailure(op, "failed to associate game "+name, err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Participant{}, r.recordRegistration(err)
	}

	r.recordRegistration(nil)
	slog.Info("participant registered", "participant_id", id, "games", len(req.SelectedGames))

	return models.Participant{
		ID:               id,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		ContactNumber:    req.ContactNumber,
		AgeGroup:         req.AgeGroup,
		RegistrationDate: registeredAt,
		Games:            append([]string(nil), req.SelectedGames...),
	}, nil
}

// List returns all participants, most recently registered first, each with
// their game names sorted by name.
func (r *ParticipantRegistry) List(ctx context.Context) ([]models.Participant, error) {
	const op = "list participants"

	rows, err := r.c.conn.QueryContext(ctx,
		participantSelect+` ORDER BY p.registration_date DESC, p.id DESC, g.name ASC`)
	if err != nil {
		return nil, logFailure(storeFailure(op, "failed to query participants", err))
	}
	defer rows.Close()

	participants, err := r.collect(rows)
	if err != nil {
		return nil, logFailure(storeFailure(op, "failed to read participants", err))
	}
	return participants, nil
}

// Get returns one participant with their games.
func (r *ParticipantRegistry) Get(ctx context.Context, id string) (models.Participant, error) {
	const op = "get participant"

	if strings.TrimSpace(id) == "" {
		return models.Participant{}, invalidInput(op, "Participant ID is required")
	}

	idArg, ok := r.c.ParticipantKeys().Arg(id)
	if !ok {
		return models.Participant{}, notFound(op, "Participant not found")
	}

	rows, err := r.c.conn.QueryContext(ctx,
		r.c.q(participantSelect+` WHERE p.id = ? ORDER BY g.name ASC`), idArg)
	if err != nil {
		return models.Participant{}, logFailure(storeFailure(op, "failed to query participant", err))
	}
	defer rows.Close()

	participants, err := r.collect(rows)
	if err != nil {
		return models.Participant{}, logFailure(storeFailure(op, "failed to read participant", err))
	}
	if len(participants) == 0 {
		return models.Participant{}, notFound(op, "Participant not found")
	}
	return participants[0], nil
}

// Delete removes a participant and their game associations in one transaction.
func (r *ParticipantRegistry) Delete(ctx context.Context, id string) (string, error) {
	const op = "delete participant"

	if strings.TrimSpace(id) == "" {
		return "", r.recordDeletion(invalidInput(op, "Participant ID is required"))
	}

	idArg, ok := r.c.ParticipantKeys().Arg(id)
	if !ok {
		return "", r.recordDeletion(notFound(op, "Participant not found"))
	}

	err := r.c.inTx(ctx, op, func(ctx context.Context, tx *sql.Tx) error {
		var found bool
		err := tx.QueryRowContext(ctx,
			r.c.q(`SELECT EXISTS(SELECT 1 FROM participants WHERE id = ?)`), idArg,
		).Scan(&found)
		if err != nil {
			return storeFailure(op, "failed to query participant", err)
		}
		if !found {
			return notFound(op, "Participant not found")
		}

		// Explicit so the cascade does not depend on SQLite's foreign_keys pragma.
		if _, err := tx.ExecContext(ctx, r.c.q(`DELETE FROM participant_games WHERE participant_id = ?`), idArg); err != nil {
			return storeFailure(op, "failed to delete game associations", err)
		}
		if _, err := tx.ExecContext(ctx, r.c.q(`DELETE FROM participants WHERE id = ?`), idArg); err != nil {
			return storeFailure(op, "failed to delete participant", err)
		}
		return nil
	})
	if err != nil {
		return "", r.recordDeletion(err)
	}

	r.recordDeletion(nil)
	slog.Info("participant deleted", "participant_id", id)
	return id, nil
}

// collect folds joined participant/game rows into participants. Rows for one
// participant are adjacent because every query orders by p.id within a date.
func (r *ParticipantRegistry) collect(rows *sql.Rows) ([]models.Participant, error) {
	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var registeredAt any
		var game sql.NullString
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.ContactNumber, &p.AgeGroup, &registeredAt, &game); err != nil {
			return nil, err
		}

		n := len(participants)
		if n == 0 || participants[n-1].ID != p.ID {
			if ts, ok := db.ParseTimestamp(registeredAt); ok {
				p.RegistrationDate = ts
			}
			p.Games = []string{}
			participants = append(participants, p)
			n++
		}
		if game.Valid {
			participants[n-1].Games = append(participants[n-1].Games, game.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return participants, nil
}

func validateRegistration(op string, req models.RegistrationRequest) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.ContactNumber) == "" || strings.TrimSpace(req.AgeGroup) == "" {
		return invalidInput(op, "Missing required fields")
	}
	if len(req.SelectedGames) == 0 {
		return invalidInput(op, "At least one game must be selected")
	}

	seen := make(map[string]bool, len(req.SelectedGames))
	for _, name := range req.SelectedGames {
		if strings.TrimSpace(name) == "" {
			return invalidInput(op, "Selected game names cannot be empty")
		}
		if seen[name] {
			return invalidInput(op, "Game selected more than once: "+name)
		}
		seen[name] = true
	}
	return nil
}

func (r *ParticipantRegistry) recordRegistration(err error) error {
	metrics.Registrations.WithLabelValues(outcome(err)).Inc()
	return logFailure(err)
}

func (r *ParticipantRegistry) recordDeletion(err error) error {
	metrics.ParticipantDeletions.WithLabelValues(outcome(err)).Inc()
	return logFailure(err)
}
