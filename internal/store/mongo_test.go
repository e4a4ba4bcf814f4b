package store

import (
	"context"
	"errors"
	"testing"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sessionDoc(version int64) bson.D {
	return bson.D{
		{Key: "_id", Value: "s1"},
		{Key: "questions", Value: bson.A{
			bson.D{{Key: "num1", Value: 6}, {Key: "num2", Value: 7}, {Key: "answer", Value: 42}},
		}},
		{Key: "cursor", Value: 0},
		{Key: "answers", Value: bson.A{}},
		{Key: "score", Value: 0},
		{Key: "correct_count", Value: 0},
		{Key: "state", Value: "awaiting_next"},
		{Key: "version", Value: version},
	}
}

func TestMongoGetUnknownSession(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty find maps to not found", func(mt *mtest.T) {
		st := &MongoStore{Col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mathgame.sessions", mtest.FirstBatch))

		_, err := st.Get(context.Background(), "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestMongoUpdateRetriesOnVersionConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lost race re-reads and retries", func(mt *mtest.T) {
		st := &MongoStore{Col: mt.Coll}

		// First replace matches nothing (a concurrent writer bumped the
		// version between our read and our replace); the second round
		// reads the new snapshot and lands.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "mathgame.sessions", mtest.FirstBatch, sessionDoc(3)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateCursorResponse(0, "mathgame.sessions", mtest.FirstBatch, sessionDoc(4)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		mutatorRuns := 0
		err := st.Update(context.Background(), "s1", func(s *models.GameSession) error {
			mutatorRuns++
			s.Score += 8
			return nil
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if mutatorRuns != 2 {
			t.Errorf("Expected the mutator to re-run against a fresh snapshot, ran %d times", mutatorRuns)
		}
	})

	mt.Run("mutator error skips the write", func(mt *mtest.T) {
		st := &MongoStore{Col: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "mathgame.sessions", mtest.FirstBatch, sessionDoc(0)),
		)

		boom := errors.New("boom")
		err := st.Update(context.Background(), "s1", func(s *models.GameSession) error {
			return boom
		})
		if !errors.Is(err, boom) {
			t.Errorf("Expected mutator error back, got %v", err)
		}
	})
}
