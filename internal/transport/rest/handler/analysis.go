package handler

import (
	"encoding/json"
	"net/http"

	"parallelhearts/internal/model"
	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest/middleware"
)

// AnalysisHandler handles quality checks and conversation analysis
type AnalysisHandler struct {
	intakeSvc *service.IntakeService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(intakeSvc *service.IntakeService) *AnalysisHandler {
	return &AnalysisHandler{intakeSvc: intakeSvc}
}

type qualityRequest struct {
	Conversation string `json:"conversation"`
}

// CheckQuality handles POST /v1/quality
func (h *AnalysisHandler) CheckQuality(w http.ResponseWriter, r *http.Request) {
	var req qualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.intakeSvc.CheckQuality(req.Conversation)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type analyzeRequest struct {
	Conversation     string            `json:"conversation"`
	RelationshipType string            `json:"relationship_type"`
	Answers          map[string]string `json:"answers"`
}

// Analyze handles POST /v1/analyses
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.intakeSvc.Analyze(r.Context(), sessionID, req.Conversation,
		model.RelationshipType(req.RelationshipType), req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// GetLatest handles GET /v1/analyses/latest
func (h *AnalysisHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	analysis, err := h.intakeSvc.GetLatest(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// ClearLatest handles DELETE /v1/analyses/latest
func (h *AnalysisHandler) ClearLatest(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	if err := h.intakeSvc.ClearLatest(r.Context(), sessionID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
