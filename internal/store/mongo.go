package store

import (
	"context"
	"errors"
	"fmt"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateRetries bounds the optimistic-concurrency loop in Update. Contention
// on a single session is two racing requests at most in practice, so running
// out of attempts means something is badly wrong.
const updateRetries = 5

// MongoStore keeps sessions in a MongoDB collection, keyed by the session
// ID. It implements the same SessionStore contract as MemoryStore and is
// selected when MONGO_URI is configured.
type MongoStore struct {
	Col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{Col: db.Collection("sessions")}
}

func (s *MongoStore) Create(ctx context.Context, session *models.GameSession) error {
	_, err := s.Col.InsertOne(ctx, session)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.GameSession, error) {
	var session models.GameSession
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update applies mutate under optimistic concurrency: the replace filters on
// the version the snapshot was read at, so a writer that lost a race matches
// nothing and retries against a fresh snapshot instead of clobbering the
// winner's write.
func (s *MongoStore) Update(ctx context.Context, id string, mutate func(*models.GameSession) error) error {
	for attempt := 0; attempt < updateRetries; attempt++ {
		session, err := s.Get(ctx, id)
		if err != nil {
			return err
		}

		readVersion := session.Version
		if err := mutate(session); err != nil {
			return err
		}
		session.Version = readVersion + 1

		res, err := s.Col.ReplaceOne(ctx, bson.M{"_id": id, "version": readVersion}, session)
		if err != nil {
			return err
		}
		if res.MatchedCount == 1 {
			return nil
		}
	}
	return fmt.Errorf("session %s: update contention not resolved after %d attempts", id, updateRetries)
}
