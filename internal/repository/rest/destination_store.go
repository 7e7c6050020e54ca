package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/resource"
)

const destinationsCollection = "destinations"

type DestinationStore struct {
	client *resource.Client
}

func NewDestinationStore(client *resource.Client) *DestinationStore {
	return &DestinationStore{client: client}
}

func (s *DestinationStore) List(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := s.client.List(ctx, destinationsCollection, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (s *DestinationStore) ListSorted(ctx context.Context, field string, ascending bool) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := s.client.SortedBy(ctx, destinationsCollection, field, ascending, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

// ListByType pushes an exact type filter down to the store, combined with a
// server-side descending rating sort. This is the only predicate the store
// can evaluate itself; compound specs go through the listing pipeline.
func (s *DestinationStore) ListByType(ctx context.Context, t domain.DestinationType) ([]domain.Destination, error) {
	var destinations []domain.Destination
	query := resource.Query{
		Collection: destinationsCollection,
		Filters:    []resource.Filter{{Field: "type", Value: string(t)}},
		Sort:       &resource.Sort{Field: "rating", Ascending: false},
	}
	if err := s.client.Execute(ctx, query, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (s *DestinationStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, bool, error) {
	var destination domain.Destination
	found, err := s.client.GetOne(ctx, destinationsCollection, id.String(), &destination)
	if err != nil || !found {
		return nil, false, err
	}
	return &destination, true, nil
}

func (s *DestinationStore) Patch(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (*domain.Destination, error) {
	var stored domain.Destination
	if err := s.client.Patch(ctx, destinationsCollection, id.String(), patch, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
