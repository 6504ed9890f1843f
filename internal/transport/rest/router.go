package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest/handler"
	"parallelhearts/internal/transport/rest/middleware"
	"parallelhearts/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	IntakeService     *service.IntakeService
	AssessmentService *service.AssessmentService
	FightSimService   *service.FightSimService
	StoryService      *service.StoryService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.AuthService)
	analysisHandler := handler.NewAnalysisHandler(c.IntakeService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	simHandler := handler.NewFightSimHandler(c.FightSimService)
	storyHandler := handler.NewStoryHandler(c.StoryService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/realms", assessmentHandler.Realms).Methods("GET", "OPTIONS")
	v1.HandleFunc("/simulations/scenarios", simHandler.Scenarios).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require session auth)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/quality", analysisHandler.CheckQuality).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/analyses", analysisHandler.Analyze).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/analyses/latest", analysisHandler.GetLatest).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/analyses/latest", analysisHandler.ClearLatest).Methods("DELETE", "OPTIONS")

	sessionRoutes.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/{id}/answers", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/{id}/back", assessmentHandler.Back).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/assessments/{id}/analyze", assessmentHandler.Analyze).Methods("POST", "OPTIONS")

	sessionRoutes.HandleFunc("/simulations", simHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/simulations/{id}", simHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/simulations/{id}/responses", simHandler.Respond).Methods("POST", "OPTIONS")

	sessionRoutes.HandleFunc("/scenarios/{scenarioId}/story", storyHandler.Generate).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/scenarios/{scenarioId}/story", storyHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
