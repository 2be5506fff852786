// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/avurudu-games/auth"
	"github.com/danielhkuo/avurudu-games/cliparse"
	"github.com/danielhkuo/avurudu-games/handlers"
	"github.com/danielhkuo/avurudu-games/middleware"
	"github.com/danielhkuo/avurudu-games/store"
)

func NewRouter(client *store.Client, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize stores and handlers
	games := store.NewGameCatalog(client)
	registry := store.NewParticipantRegistry(client, games)

	healthHandler := handlers.NewHealthHandler(client.DB())
	gameHandler := handlers.NewGameHandler(games)
	participantHandler := handlers.NewParticipantHandler(registry)

	log := middleware.WithLogging
	admin := middleware.RequireAdmin(auth.NewAdmin(cfg.AdminUser, cfg.AdminPassword))

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public registration
	mux.HandleFunc("GET /api/games", log(gameHandler.ListGames))
	mux.HandleFunc("POST /api/register", log(participantHandler.Register))

	// Admin operations (basic auth)
	mux.HandleFunc("GET /api/admin/auth-test", log(admin(healthHandler.AuthTest)))

	mux.HandleFunc("GET /api/admin/participants", log(admin(participantHandler.ListParticipants)))
	mux.HandleFunc("GET /api/admin/participants/{id}", log(admin(participantHandler.GetParticipant)))
	mux.HandleFunc("DELETE /api/admin/participants/{id}", log(admin(participantHandler.DeleteParticipant)))

	mux.HandleFunc("GET /api/admin/games", log(admin(gameHandler.ListGames)))
	mux.HandleFunc("POST /api/admin/games", log(admin(gameHandler.CreateGame)))
	mux.HandleFunc("GET /api/admin/games/{id}", log(admin(gameHandler.GetGame)))
	mux.HandleFunc("PUT /api/admin/games/{id}", log(admin(gameHandler.UpdateGame)))
	mux.HandleFunc("DELETE /api/admin/games/{id}", log(admin(gameHandler.DeleteGame)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("avurudu-games API v1"))
	})

	return mux
}
