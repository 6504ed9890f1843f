package handler

import (
	"net/http"

	"parallelhearts/internal/service"
)

// SessionHandler handles anonymous session endpoints
type SessionHandler struct {
	authSvc *service.AuthService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authSvc *service.AuthService) *SessionHandler {
	return &SessionHandler{authSvc: authSvc}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authSvc.OpenSession()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not open session")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
