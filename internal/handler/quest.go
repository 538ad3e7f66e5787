package handler

import (
	"net/http"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
)

// QuestHandler handles quest HTTP requests
type QuestHandler struct {
	svc *service.QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(svc *service.QuestService) *QuestHandler {
	return &QuestHandler{svc: svc}
}

// List handles GET /v1/quests/{playerId}
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	quests, err := h.svc.List(r.Context(), r.PathValue("playerId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if quests == nil {
		quests = []*model.Quest{}
	}
	WriteJSON(w, http.StatusOK, quests)
}

// Create handles POST /v1/quests
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	quest, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, quest)
}

// Update handles PUT /v1/quests/{id}
func (h *QuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateQuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	quest, err := h.svc.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, quest)
}

// Delete handles DELETE /v1/quests/{id}
func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Quest deleted"})
}
