package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parallelhearts/internal/cache"
	"parallelhearts/internal/config"
	"parallelhearts/internal/repository"
	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/rest"
	"parallelhearts/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Load oracle config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("Oracle config:")
	log.Printf("  Analysis: %s", aiConfig.Models.Analysis)
	log.Printf("  Story:    %s", aiConfig.Models.Story)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured ✓")
	} else {
		log.Println("  API Key:  NOT SET (conversation analyses use the built-in fallback)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	convRepo := repository.NewConversationRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	// Initialize caches
	analysisCache := cache.NewAnalysisCache(rdb)
	storyCache := cache.NewStoryCache(rdb)
	stateCache := cache.NewStateCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	oracle := service.NewOracleService(aiConfig)
	intakeSvc := service.NewIntakeService(oracle, convRepo, profileRepo, analysisCache, wsHub)
	assessmentSvc := service.NewAssessmentService(oracle, profileRepo, stateCache, analysisCache)
	simSvc := service.NewFightSimService(stateCache)
	storySvc := service.NewStoryService(oracle, intakeSvc, storyCache)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		IntakeService:     intakeSvc,
		AssessmentService: assessmentSvc,
		FightSimService:   simSvc,
		StoryService:      storySvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/quality")
		log.Println("  POST /v1/analyses")
		log.Println("  GET/DELETE /v1/analyses/latest")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  POST/GET /v1/simulations")
		log.Println("  POST/GET /v1/scenarios/{scenarioId}/story")
		log.Println("  WS  /v1/ws")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
