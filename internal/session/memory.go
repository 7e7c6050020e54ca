package session

import (
	"sync"

	"github.com/voyago/voyago/internal/domain"
)

// MemoryStore holds the session in memory. Used by tests and by callers
// that do not want persistence across runs.
type MemoryStore struct {
	mu   sync.Mutex
	user *domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone(), nil
}

func (s *MemoryStore) Save(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user.Clone()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
