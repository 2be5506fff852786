// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/avurudu-games/middleware"
	"github.com/danielhkuo/avurudu-games/models"
)

// Catalog is the games store used by GameHandler.
type Catalog interface {
	List(ctx context.Context) ([]models.Game, error)
	Get(ctx context.Context, id int64) (models.Game, error)
	Create(ctx context.Context, req models.CreateGameRequest) (models.Game, error)
	Update(ctx context.Context, id int64, req models.UpdateGameRequest) (models.Game, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GameHandler struct {
	games Catalog
}

func NewGameHandler(games Catalog) *GameHandler {
	return &GameHandler{games: games}
}

// ListGames handles GET /api/games and GET /api/admin/games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch games")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, games)
}

// GetGame handles GET /api/admin/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	game, err := h.games.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch game")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, game)
}

// CreateGame handles POST /api/admin/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	game, err := h.games.Create(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Failed to create game")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, game)
}

// UpdateGame handles PUT /api/admin/games/{id}
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	var req models.UpdateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	game, err := h.games.Update(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, r, err, "Failed to update game")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, game)
}

// DeleteGame handles DELETE /api/admin/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	deleted, err := h.games.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Failed to delete game")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DeleteGameResponse{
		ID:      deleted,
		Message: "Game deleted successfully",
	})
}

func gameID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid game ID")
		return 0, false
	}
	return id, true
}
