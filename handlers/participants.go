// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/avurudu-games/middleware"
	"github.com/danielhkuo/avurudu-games/models"
)

// Registry is the participant store used by ParticipantHandler.
type Registry interface {
	Register(ctx context.Context, req models.RegistrationRequest) (models.Participant, error)
	List(ctx context.Context) ([]models.Participant, error)
	Get(ctx context.Context, id string) (models.Participant, error)
	Delete(ctx context.Context, id string) (string, error)
}

type ParticipantHandler struct {
	registry Registry
}

func NewParticipantHandler(registry Registry) *ParticipantHandler {
	return &ParticipantHandler{registry: registry}
}

// Register handles POST /api/register
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.AgeGroup = strings.TrimSpace(req.AgeGroup)

	// Leave missing-field errors to the store; only the format is checked here.
	if req.ContactNumber != "" && !isContactNumber(req.ContactNumber) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Contact number must be exactly 10 digits")
		return
	}

	participant, err := h.registry.Register(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Failed to register participant")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, participant)
}

// ListParticipants handles GET /api/admin/participants
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.registry.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch participants")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, participants)
}

// GetParticipant handles GET /api/admin/participants/{id}
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participant, err := h.registry.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch participant")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, participant)
}

// DeleteParticipant handles DELETE /api/admin/participants/{id}
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.registry.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err, "Failed to delete participant")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DeleteParticipantResponse{
		ID:      deleted,
		Message: "Participant deleted successfully",
	})
}

func isContactNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
