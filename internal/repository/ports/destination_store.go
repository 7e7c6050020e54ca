package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
)

type DestinationStore interface {
	List(ctx context.Context) ([]domain.Destination, error)
	ListSorted(ctx context.Context, field string, ascending bool) ([]domain.Destination, error)
	ListByType(ctx context.Context, t domain.DestinationType) ([]domain.Destination, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, bool, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.DestinationPatch) (*domain.Destination, error)
}
