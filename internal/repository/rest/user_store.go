package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/resource"
)

const usersCollection = "users"

// UserStore maps the users collection of the flat resource store onto the
// ports.UserStore contract. Username and email lookups are single-field
// equality queries; anything richer is the caller's problem.
type UserStore struct {
	client *resource.Client
}

func NewUserStore(client *resource.Client) *UserStore {
	return &UserStore{client: client}
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, bool, error) {
	var user domain.User
	found, err := s.client.GetOne(ctx, usersCollection, id.String(), &user)
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) ([]domain.User, error) {
	var users []domain.User
	if err := s.client.FilterEqual(ctx, usersCollection, "username", username, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	var users []domain.User
	if err := s.client.FilterEqual(ctx, usersCollection, "email", email, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	var stored domain.User
	if err := s.client.Insert(ctx, usersCollection, user, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *UserStore) Patch(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	var stored domain.User
	if err := s.client.Patch(ctx, usersCollection, id.String(), patch, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
