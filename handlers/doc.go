// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Avurudu Games API.

# Handler Types

Each handler wraps one store:

  - GameHandler: games catalog (public list, admin CRUD)
  - ParticipantHandler: registration and admin participant management
  - HealthHandler: health checks and the admin auth check

Handlers depend on small interfaces (Catalog, Registry, Pinger) that the
store package satisfies:

	games := store.NewGameCatalog(client)
	gameHandler := handlers.NewGameHandler(games)

# Error Mapping

Store errors are mapped by kind, never by message text:

	invalid_input → 400
	not_found     → 404
	conflict      → 409
	anything else → 500

For 4xx responses the store's message is returned to the caller. For 500s a
fixed message such as "Failed to fetch games" is returned and the driver
error stays in the server log.

# Registration

	POST /api/register → Register

The handler trims the text fields and requires the contact number to be
exactly 10 digits. Everything else (required fields, game existence,
all-or-nothing insert) is enforced by the store.

# Admin Operations

	GET    /api/admin/participants       → ListParticipants
	DELETE /api/admin/participants/{id}  → DeleteParticipant
	PUT    /api/admin/games/{id}         → UpdateGame (partial; absent fields unchanged)
	DELETE /api/admin/games/{id}         → DeleteGame (409 while participants exist)

Authentication is applied by the router, not by the handlers.
*/
package handlers
