package store

import (
	"sync"

	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
)

// MemoryStore keeps a thread-safe PickState table in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]picks.PickState
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]picks.PickState),
	}
}

// Load retrieves the state for a category.
func (s *MemoryStore) Load(category string) (picks.PickState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[category]
	return state, ok, nil
}

// Save replaces the state for a category.
func (s *MemoryStore) Save(category string, state picks.PickState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[category] = state
	return nil
}
