package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"parallelhearts/internal/service"
)

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrConversationTooShort),
		errors.Is(err, service.ErrInvalidMode):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAnswersIncomplete),
		errors.Is(err, service.ErrWizardIncomplete):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUnknownScenario):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWizardCompleted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrOracleUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
