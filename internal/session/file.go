package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/voyago/voyago/internal/domain"
)

// FileStore keeps the session in a single JSON file. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn session.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: load: %w", err)
	}
	var payload map[string]*domain.User
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}
	return payload[Key], nil
}

func (s *FileStore) Save(user *domain.User) error {
	data, err := json.Marshal(map[string]*domain.User{Key: user})
	if err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: save: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
