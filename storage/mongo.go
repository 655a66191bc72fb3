package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shinmen-coffee/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps snapshots and users in MongoDB collections
type MongoStore struct {
	Snapshots *mongo.Collection
	Users     *mongo.Collection
}

// NewMongoStore binds the store to the "snapshots" and "users" collections of database
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		Snapshots: db.Collection("snapshots"),
		Users:     db.Collection("users"),
	}
}

// EnsureIndexes creates the unique email index on users
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (s *MongoStore) LoadSnapshot(ctx context.Context, key string) (models.Snapshot, error) {
	var snap models.Snapshot
	err := s.Snapshots.FindOne(ctx, bson.M{"_id": key}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return snap, nil
}

func (s *MongoStore) SaveSnapshot(ctx context.Context, snap models.Snapshot) error {
	_, err := s.Snapshots.ReplaceOne(ctx, bson.M{"_id": snap.Key}, snap, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.Key, err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.ID = primitive.NewObjectID()
	_, err := s.Users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, ErrAlreadyExists
	}
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUser(ctx, bson.M{"email": strings.ToLower(email)})
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"preferences": prefs}})
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
