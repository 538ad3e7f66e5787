package handler

import (
	"net/http"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
)

// PlayerHandler handles player HTTP requests
type PlayerHandler struct {
	svc *service.PlayerService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(svc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// GetOrCreate handles GET /v1/players/{name}. A first request for an unseen
// name provisions the profile, so this doubles as quick-play sign-in.
func (h *PlayerHandler) GetOrCreate(w http.ResponseWriter, r *http.Request) {
	player, err := h.svc.GetOrCreate(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, player)
}

// Update handles PUT /v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := DecodeJSON(r, &fields); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	player, err := h.svc.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, player)
}

// AllocateStat handles POST /v1/players/{id}/stats/allocate
func (h *PlayerHandler) AllocateStat(w http.ResponseWriter, r *http.Request) {
	var req model.AllocateStatRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	player, err := h.svc.AllocateStat(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, player)
}
