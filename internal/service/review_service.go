package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/repository/ports"
	"github.com/voyago/voyago/internal/resource"
)

// ReviewService merges submitted reviews into a destination and keeps the
// aggregate rating consistent with them. The destination patch is persisted
// remotely before any state the caller sees changes; a failed persist
// leaves the in-memory destination exactly as it was.
type ReviewService struct {
	destinations ports.DestinationStore

	now   func() time.Time
	newID func() uuid.UUID
}

func NewReviewService(destinations ports.DestinationStore) *ReviewService {
	return &ReviewService{
		destinations: destinations,
		now:          time.Now,
		newID:        uuid.New,
	}
}

type SubmitResult struct {
	Destination *domain.Destination
	Review      domain.Review
}

// SubmitReview validates the draft, builds the review, prepends it to the
// destination's list (newest-first is an invariant of that list), recomputes
// the running-mean rating, and persists the patch. The returned destination
// is the server's copy of the merged record.
func (s *ReviewService) SubmitReview(ctx context.Context, destination *domain.Destination, draft domain.ReviewDraft, author *domain.User) (*SubmitResult, error) {
	if author == nil {
		return nil, ErrNotAuthenticated
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}
	comment := strings.TrimSpace(draft.Comment)
	if err := validateReview(draft.Rating, comment); err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:        s.newID(),
		UserID:    author.ID,
		Username:  author.Username,
		AvatarURL: author.AvatarURL,
		Rating:    draft.Rating,
		Comment:   comment,
		Date:      s.now().UTC().Format("2006-01-02"),
	}

	reviews := make([]domain.Review, 0, len(destination.Reviews)+1)
	reviews = append(reviews, review)
	reviews = append(reviews, destination.Reviews...)
	rating := RunningMean(destination.Rating, len(destination.Reviews), review.Rating)

	stored, err := s.destinations.Patch(ctx, destination.ID, domain.DestinationPatch{
		Rating:  &rating,
		Reviews: &reviews,
	})
	if err != nil {
		var remote *resource.RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusNotFound {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	return &SubmitResult{Destination: stored, Review: review}, nil
}

// RunningMean folds one more rating into an aggregate of count ratings.
// With count zero the new rating stands alone.
func RunningMean(aggregate float64, count, rating int) float64 {
	if count <= 0 {
		return float64(rating)
	}
	return (aggregate*float64(count) + float64(rating)) / float64(count+1)
}

func validateReview(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrReviewValidation)
	}
	if comment == "" {
		return fmt.Errorf("%w: comment cannot be empty", ErrReviewValidation)
	}
	if utf8.RuneCountInString(comment) > domain.MaxReviewCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrReviewValidation, domain.MaxReviewCommentLength)
	}
	return nil
}
