package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"parallelhearts/internal/model"
)

// ConversationRepo handles MongoDB operations for submitted conversations.
type ConversationRepo interface {
	Create(ctx context.Context, conv *model.Conversation) (string, error)
	GetByID(ctx context.Context, id string) (*model.Conversation, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.Conversation, error)
	Delete(ctx context.Context, id string) error
}

type conversationRepo struct {
	collection *mongo.Collection
}

// NewConversationRepo creates a new conversation repository.
func NewConversationRepo(db *mongo.Database) ConversationRepo {
	return &conversationRepo{
		collection: db.Collection("conversations"),
	}
}

func (r *conversationRepo) Create(ctx context.Context, conv *model.Conversation) (string, error) {
	conv.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, conv)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var conv model.Conversation
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	conv.ID = id
	return &conv, nil
}

func (r *conversationRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Conversation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []*model.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
