package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parallelhearts/internal/model"
	"parallelhearts/internal/service"
)

// Seeds a demo conversation and its analysis so the frontend has data to
// render against a fresh database.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "parallelhearts"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	sessionID := "sess_demo"

	text := `Alex: I feel like we haven't really talked in weeks. Every evening you're on your laptop.
Sam: I know, work has been insane. I'm sorry. I don't mean to shut you out.
Alex: I understand the pressure, I just miss us. Even twenty minutes over dinner would help.
Sam: You're right. Can we try phones-away dinners starting tonight? I want that too.
Alex: I'd love that. And I'll stop scheduling things over our weekends without asking.
Sam: Thank you for saying something instead of letting it build up.`

	metrics := model.ComputeMetrics(text)
	tier := model.Classify(metrics.CharCount)

	conv := &model.Conversation{
		SessionID:        sessionID,
		Text:             text,
		QualityBadge:     tier.Badge,
		Metrics:          metrics,
		RelationshipType: model.RelationshipRomantic,
		CreatedAt:        time.Now(),
	}

	convRes, err := db.Collection("conversations").InsertOne(ctx, conv)
	if err != nil {
		log.Fatalf("Failed to insert conversation: %v", err)
	}

	convID := ""
	if oid, ok := convRes.InsertedID.(primitive.ObjectID); ok {
		convID = oid.Hex()
	}

	profile := &model.Profile{
		SessionID:      sessionID,
		ConversationID: convID,
		Analysis:       *service.FallbackAnalysis(),
		Fallback:       true,
		CreatedAt:      time.Now(),
	}

	if _, err := db.Collection("profiles").InsertOne(ctx, profile); err != nil {
		log.Fatalf("Failed to insert profile: %v", err)
	}

	fmt.Printf("Seeded demo conversation (%s badge) and profile for session %q\n", tier.Badge, sessionID)
}
