package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest/middleware"
)

// StoryHandler handles scenario story endpoints
type StoryHandler struct {
	storySvc *service.StoryService
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(storySvc *service.StoryService) *StoryHandler {
	return &StoryHandler{storySvc: storySvc}
}

// Generate handles POST /v1/scenarios/{scenarioId}/story
func (h *StoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	scenarioID := mux.Vars(r)["scenarioId"]

	story, err := h.storySvc.Generate(r.Context(), sessionID, scenarioID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// Get handles GET /v1/scenarios/{scenarioId}/story
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	scenarioID := mux.Vars(r)["scenarioId"]

	story, err := h.storySvc.Get(r.Context(), sessionID, scenarioID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}
