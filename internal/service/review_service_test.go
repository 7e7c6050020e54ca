package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/resource"
)

func reviewAuthor() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Username:  "alice",
		AvatarURL: "https://example.com/alice.png",
	}
}

func TestSubmitReviewRecomputesRunningMean(t *testing.T) {
	ctx := context.Background()
	dest := &domain.Destination{
		ID:     uuid.New(),
		Name:   "Bali Beach",
		Rating: 4.0,
		Reviews: []domain.Review{
			{ID: uuid.New(), Rating: 4},
			{ID: uuid.New(), Rating: 4},
		},
	}
	store := newMemDestinationStore(dest)
	svc := NewReviewService(store)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	result, err := svc.SubmitReview(ctx, dest, domain.ReviewDraft{Rating: 5, Comment: "Stunning"}, reviewAuthor())
	if err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}

	expected := (4.0*2 + 5) / 3
	if math.Abs(result.Destination.Rating-expected) > 1e-9 {
		t.Fatalf("expected rating %.4f, got %.4f", expected, result.Destination.Rating)
	}
	if len(result.Destination.Reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(result.Destination.Reviews))
	}
	if result.Destination.Reviews[0].ID != result.Review.ID {
		t.Fatal("the new review must be first in the list")
	}
	if result.Review.Date != "2024-06-01" {
		t.Fatalf("expected ISO date 2024-06-01, got %s", result.Review.Date)
	}
}

func TestSubmitReviewFirstReviewStandsAlone(t *testing.T) {
	ctx := context.Background()
	dest := &domain.Destination{ID: uuid.New(), Name: "Kyoto Temples"}
	svc := NewReviewService(newMemDestinationStore(dest))

	result, err := svc.SubmitReview(ctx, dest, domain.ReviewDraft{Rating: 3, Comment: "Quiet in autumn"}, reviewAuthor())
	if err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}
	if result.Destination.Rating != 3.0 {
		t.Fatalf("first review sets the rating outright, got %.2f", result.Destination.Rating)
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	ctx := context.Background()
	dest := &domain.Destination{ID: uuid.New()}
	svc := NewReviewService(newMemDestinationStore(dest))
	author := reviewAuthor()

	cases := []struct {
		name  string
		draft domain.ReviewDraft
	}{
		{"rating too low", domain.ReviewDraft{Rating: 0, Comment: "x"}},
		{"rating too high", domain.ReviewDraft{Rating: 6, Comment: "x"}},
		{"empty comment", domain.ReviewDraft{Rating: 4, Comment: "   "}},
		{"oversized comment", domain.ReviewDraft{Rating: 4, Comment: strings.Repeat("a", domain.MaxReviewCommentLength+1)}},
	}
	for _, tc := range cases {
		if _, err := svc.SubmitReview(ctx, dest, tc.draft, author); !errors.Is(err, ErrReviewValidation) {
			t.Fatalf("%s: expected ErrReviewValidation, got %v", tc.name, err)
		}
	}

	if _, err := svc.SubmitReview(ctx, dest, domain.ReviewDraft{Rating: 4, Comment: "fine"}, nil); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated for a nil author, got %v", err)
	}
}

func TestSubmitReviewPersistsBeforeMutating(t *testing.T) {
	ctx := context.Background()
	dest := &domain.Destination{ID: uuid.New(), Rating: 4.5, Reviews: []domain.Review{{ID: uuid.New(), Rating: 5}}}
	store := newMemDestinationStore(dest)
	store.patchErr = &resource.RemoteError{Op: "patch", Collection: "destinations", Status: 500}
	svc := NewReviewService(store)

	_, err := svc.SubmitReview(ctx, dest, domain.ReviewDraft{Rating: 1, Comment: "Crowded"}, reviewAuthor())
	if err == nil {
		t.Fatal("expected the failed persist to surface")
	}

	// The caller's destination is untouched: no local mutation without a
	// confirmed remote write.
	if dest.Rating != 4.5 || len(dest.Reviews) != 1 {
		t.Fatalf("failed persist must not mutate the input destination: %+v", dest)
	}
}

func TestSubmitReviewUnknownDestination(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(newMemDestinationStore())

	ghost := &domain.Destination{ID: uuid.New()}
	_, err := svc.SubmitReview(ctx, ghost, domain.ReviewDraft{Rating: 4, Comment: "fine"}, reviewAuthor())
	if !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestRunningMean(t *testing.T) {
	if got := RunningMean(0, 0, 5); got != 5 {
		t.Fatalf("empty aggregate: expected 5, got %v", got)
	}
	if got := RunningMean(4.0, 2, 5); math.Abs(got-4.333333333) > 1e-6 {
		t.Fatalf("expected 4.3333, got %v", got)
	}
}
