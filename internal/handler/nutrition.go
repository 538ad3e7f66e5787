package handler

import (
	"net/http"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
)

// NutritionHandler handles food log HTTP requests
type NutritionHandler struct {
	svc *service.NutritionService
}

// NewNutritionHandler creates a new nutrition handler
func NewNutritionHandler(svc *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{svc: svc}
}

// Today handles GET /v1/players/{playerId}/nutrition
func (h *NutritionHandler) Today(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.Today(r.Context(), r.PathValue("playerId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if logs == nil {
		logs = []*model.FoodLog{}
	}
	WriteJSON(w, http.StatusOK, logs)
}

// Log handles POST /v1/nutrition
func (h *NutritionHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req model.LogFoodRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resp, err := h.svc.Log(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, resp)
}
