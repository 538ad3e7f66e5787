package handler

import (
	"net/http"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
)

// BattleHandler handles battle HTTP requests. Battle endpoints keep the
// flat {"error": message} failure shape clients already parse instead of
// the problem-details envelope used elsewhere.
type BattleHandler struct {
	svc *service.BattleService
}

// NewBattleHandler creates a new battle handler
func NewBattleHandler(svc *service.BattleService) *BattleHandler {
	return &BattleHandler{svc: svc}
}

// Start handles POST /v1/battles/start
func (h *BattleHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartBattleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	outcome, err := h.svc.Start(r.Context(), &req)
	if err != nil {
		writeLegacyError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, outcome)
}

// Bosses handles GET /v1/bosses
func (h *BattleHandler) Bosses(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, model.Bosses())
}

// History handles GET /v1/battles/history/{playerId}
func (h *BattleHandler) History(w http.ResponseWriter, r *http.Request) {
	battles, err := h.svc.History(r.Context(), r.PathValue("playerId"))
	if err != nil {
		writeLegacyError(w, err)
		return
	}
	if battles == nil {
		battles = []*model.Battle{}
	}
	WriteJSON(w, http.StatusOK, battles)
}
