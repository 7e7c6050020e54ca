package domain

import "github.com/google/uuid"

// MaxReviewCommentLength bounds a review comment in runes.
const MaxReviewCommentLength = 500

// Review is immutable once created. Reviews are kept newest-first on the
// destination record.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      string    `json:"date"`
}

// ReviewDraft is the user-submitted portion of a review before the
// aggregator attaches identity and a date.
type ReviewDraft struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
