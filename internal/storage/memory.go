package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps high scores for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// LoadHighScore returns the best score seen for gameID, 0 if none.
func (s *MemoryStore) LoadHighScore(_ context.Context, gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[gameID], nil
}

// SaveHighScore keeps score if it beats the stored value.
func (s *MemoryStore) SaveHighScore(_ context.Context, gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.scores[gameID] {
		s.scores[gameID] = score
	}
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
