// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router configures HTTP routes for the Avurudu Games API.

# Setup

	client := store.New(conn, db.SQLite)
	mux := router.NewRouter(client, cfg)
	http.ListenAndServe(":3001", middleware.CORS(cfg.AllowedOrigins)(mux))

Routes use Go 1.22+ method patterns ("GET /api/games"). Every API route is
wrapped with middleware.WithLogging; admin routes also pass through
middleware.RequireAdmin.

# Routes

Health and metrics:

	GET  /health                          → Health (pings the database)
	GET  /api/health                      → Health
	GET  /metrics                         → Prometheus exposition

Public:

	GET  /api/games                       → ListGames
	POST /api/register                    → Register

Admin (basic auth):

	GET    /api/admin/auth-test           → AuthTest
	GET    /api/admin/participants        → ListParticipants
	GET    /api/admin/participants/{id}   → GetParticipant
	DELETE /api/admin/participants/{id}   → DeleteParticipant
	GET    /api/admin/games               → ListGames
	POST   /api/admin/games               → CreateGame
	GET    /api/admin/games/{id}          → GetGame
	PUT    /api/admin/games/{id}          → UpdateGame
	DELETE /api/admin/games/{id}          → DeleteGame
*/
package router
