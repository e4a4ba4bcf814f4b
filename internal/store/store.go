package store

import (
	"context"
	"errors"

	"mathgame-service/internal/models"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrDuplicateKey = errors.New("session id already exists")
)

// SessionStore keeps game sessions for the lifetime of the process (or
// longer, for the Mongo-backed implementation). It holds no game rules.
type SessionStore interface {
	// Create stores a fully-formed session under its ID. Returns
	// ErrDuplicateKey if the ID is already taken.
	Create(ctx context.Context, session *models.GameSession) error

	// Get returns a copy of the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.GameSession, error)

	// Update applies mutate to the stored session atomically. If mutate
	// returns an error the stored session is left untouched. Updates to
	// distinct sessions do not block each other.
	Update(ctx context.Context, id string, mutate func(*models.GameSession) error) error
}
