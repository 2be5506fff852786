// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the games catalog and participant registry on top of
a db connection.

# Client

A Client is created once by main and shared by both stores:

	client := store.New(conn, db.SQLite, store.WithStarterCatalog(db.StarterGames))
	if err := client.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}
	games := store.NewGameCatalog(client)
	registry := store.NewParticipantRegistry(client, games)

EnsureSchema reads the live games column set once. Every catalog query is
built from that descriptor, so a games table created by an older release
(for example one with only id and name) keeps working. Missing values are
filled with defaults on read and writes only target existing columns.
The participants id type is read at the same time: tables from the first
release keep their database-assigned integer ids, newer tables get UUIDs.

# Registration

ParticipantRegistry.Register runs in one transaction:

 1. validate the request (no writes)
 2. resolve every selected game name to an id
 3. insert the participant
 4. insert one participant_games row per game
 5. commit

If any name does not resolve the call fails with KindNotFound before step 3.
A game deleted between steps 2 and 4 is also reported as KindNotFound.
Any failure after that rolls back the whole transaction, so a participant is
never stored without all of its games.

# Errors

Every operation returns *Error. Branch on the kind, never on the message:

	_, err := games.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrConflict):
		// still has participants; see err.(*store.Error).Metadata["participants"]
	case errors.Is(err, store.ErrNotFound):
	}

Message is safe to return to API callers. The wrapped driver error is only
for logs.

# Copying

CopyAll moves a catalog and its participants between two clients, for
example from a SQLite file into PostgreSQL. Participants keep their
registration dates, and their ids unless the destination is integer-keyed and
the source id is not a number.
*/
package store
