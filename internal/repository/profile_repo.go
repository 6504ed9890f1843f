package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parallelhearts/internal/model"
)

// ProfileRepo handles MongoDB operations for psychological profiles.
type ProfileRepo interface {
	Create(ctx context.Context, profile *model.Profile) (string, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetLatestBySessionID(ctx context.Context, sessionID string) (*model.Profile, error)
	Delete(ctx context.Context, id string) error
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.Profile) (string, error) {
	profile.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var profile model.Profile
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	profile.ID = id
	return &profile, nil
}

func (r *profileRepo) GetLatestBySessionID(ctx context.Context, sessionID string) (*model.Profile, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var profile model.Profile
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}, opts).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
