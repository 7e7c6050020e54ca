package domain

import "github.com/google/uuid"

// UserPatch is a partial user update. Nil fields are left untouched by the
// store's shallow merge; the JSON encoding therefore omits them.
type UserPatch struct {
	Username  *string      `json:"username,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	AvatarURL *string      `json:"avatar,omitempty"`
	Password  *string      `json:"password,omitempty"`
	Favorites *[]uuid.UUID `json:"favorites,omitempty"`
}

func (p UserPatch) IsZero() bool {
	return p.Username == nil && p.Email == nil && p.Bio == nil &&
		p.AvatarURL == nil && p.Password == nil && p.Favorites == nil
}

// DestinationPatch carries the only client-originated destination mutation:
// the review list and its recomputed aggregate rating.
type DestinationPatch struct {
	Rating  *float64  `json:"rating,omitempty"`
	Reviews *[]Review `json:"reviews,omitempty"`
}
