package store

import (
	"context"
	"sync"

	"mathgame-service/internal/models"
)

type memoryEntry struct {
	mu      sync.Mutex
	session *models.GameSession
}

// MemoryStore is the default in-process store. The outer lock only guards
// the map; each session carries its own lock, so concurrent updates to
// different sessions proceed in parallel.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Create(ctx context.Context, session *models.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return ErrDuplicateKey
	}
	s.sessions[session.ID] = &memoryEntry{session: session.Clone()}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.GameSession, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, mutate func(*models.GameSession) error) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Mutate a copy and swap it in only on success, so a failed request
	// never leaves the session half-updated.
	updated := entry.session.Clone()
	if err := mutate(updated); err != nil {
		return err
	}
	entry.session = updated
	return nil
}

func (s *MemoryStore) entry(id string) (*memoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, exists := s.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return entry, nil
}
