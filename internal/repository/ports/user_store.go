package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
)

type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, bool, error)
	FindByUsername(ctx context.Context, username string) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) ([]domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
}
