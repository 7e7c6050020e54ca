// Package session persists the authenticated identity between runs. The
// payload is the serialized user under a single fixed key: read once at
// startup, rewritten on every identity change, removed on logout.
package session

import "github.com/voyago/voyago/internal/domain"

// Key is the fixed name the serialized identity is stored under.
const Key = "currentUser"

type Store interface {
	// Load returns the persisted identity, or nil when no session exists.
	Load() (*domain.User, error)
	Save(user *domain.User) error
	Clear() error
}
