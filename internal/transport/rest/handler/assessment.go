package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"parallelhearts/internal/model"
	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest/middleware"
)

// AssessmentHandler handles the 12-realm questionnaire endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Realms handles GET /v1/realms
func (h *AssessmentHandler) Realms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Realms)
}

type startAssessmentRequest struct {
	Mode string `json:"mode"`
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req startAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.assessmentSvc.Start(r.Context(), sessionID, req.Mode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	view, err := h.assessmentSvc.Get(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// Answer handles POST /v1/assessments/{id}/answers
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.assessmentSvc.Answer(r.Context(), sessionID, id, req.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Back handles POST /v1/assessments/{id}/back
func (h *AssessmentHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	view, err := h.assessmentSvc.Back(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Analyze handles POST /v1/assessments/{id}/analyze
func (h *AssessmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	id := mux.Vars(r)["id"]

	profile, err := h.assessmentSvc.Analyze(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}
