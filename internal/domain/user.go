package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Password  string      `json:"password,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	AvatarURL string      `json:"avatar,omitempty"`
	Favorites []uuid.UUID `json:"favorites"`
	CreatedAt time.Time   `json:"created_at"`
}

func (u *User) IsFavorite(destinationID uuid.UUID) bool {
	for _, id := range u.Favorites {
		if id == destinationID {
			return true
		}
	}
	return false
}

// WithFavorite returns a copy of the user with destinationID added to the
// favorites set. The receiver is never mutated, so snapshots taken for
// rollback stay valid.
func (u *User) WithFavorite(destinationID uuid.UUID) *User {
	if u.IsFavorite(destinationID) {
		return u.Clone()
	}
	next := u.Clone()
	next.Favorites = append(next.Favorites, destinationID)
	return next
}

// WithoutFavorite returns a copy of the user with destinationID removed.
func (u *User) WithoutFavorite(destinationID uuid.UUID) *User {
	next := u.Clone()
	next.Favorites = make([]uuid.UUID, 0, len(u.Favorites))
	for _, id := range u.Favorites {
		if id != destinationID {
			next.Favorites = append(next.Favorites, id)
		}
	}
	return next
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	next := *u
	next.Favorites = make([]uuid.UUID, len(u.Favorites))
	copy(next.Favorites, u.Favorites)
	return &next
}

// Sanitized strips the password record before the identity is handed to
// readers outside the auth layer.
func (u *User) Sanitized() *User {
	next := u.Clone()
	next.Password = ""
	return next
}
