package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest/middleware"
)

// FightSimHandler handles the conflict simulator endpoints
type FightSimHandler struct {
	simSvc *service.FightSimService
}

// NewFightSimHandler creates a new fight simulator handler
func NewFightSimHandler(simSvc *service.FightSimService) *FightSimHandler {
	return &FightSimHandler{simSvc: simSvc}
}

// Scenarios handles GET /v1/simulations/scenarios
func (h *FightSimHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.simSvc.Scenarios())
}

type startSimulationRequest struct {
	ScenarioID int `json:"scenario_id"`
}

// Start handles POST /v1/simulations
func (h *FightSimHandler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req startSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.simSvc.Start(r.Context(), sessionID, req.ScenarioID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/simulations/{id}
func (h *FightSimHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	view, err := h.simSvc.Get(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type respondRequest struct {
	ChoiceIndex *int   `json:"choice_index,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Respond handles POST /v1/simulations/{id}/responses
func (h *FightSimHandler) Respond(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.simSvc.Respond(r.Context(), sessionID, id, req.ChoiceIndex, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
