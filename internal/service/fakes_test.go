package service

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/resource"
	"github.com/voyago/voyago/internal/session"
)

// flakySessionStore fails writes on demand, for exercising the paths
// where the session store and the remote record can drift apart.
type flakySessionStore struct {
	*session.MemoryStore
	saveErr error
}

func newFlakySessionStore() *flakySessionStore {
	return &flakySessionStore{MemoryStore: session.NewMemoryStore()}
}

func (s *flakySessionStore) Save(user *domain.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.MemoryStore.Save(user)
}

// memUserStore is an in-memory stand-in for the REST users collection.
type memUserStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*domain.User
	patchErr error
}

func newMemUserStore(users ...*domain.User) *memUserStore {
	store := &memUserStore{users: make(map[uuid.UUID]*domain.User)}
	for _, user := range users {
		store.users[user.ID] = user.Clone()
	}
	return store
}

func (s *memUserStore) FindByID(_ context.Context, id uuid.UUID) (*domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false, nil
	}
	return user.Clone(), true, nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, user := range s.users {
		if user.Username == username {
			out = append(out, *user.Clone())
		}
	}
	return out, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, user := range s.users {
		if user.Email == email {
			out = append(out, *user.Clone())
		}
	}
	return out, nil
}

func (s *memUserStore) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := user.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.users[stored.ID] = stored
	return stored.Clone(), nil
}

func (s *memUserStore) Patch(_ context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.patchErr != nil {
		return nil, s.patchErr
	}
	user, ok := s.users[id]
	if !ok {
		return nil, &resource.RemoteError{Op: "patch", Collection: "users", Status: http.StatusNotFound}
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Favorites != nil {
		user.Favorites = append([]uuid.UUID(nil), (*patch.Favorites)...)
	}
	return user.Clone(), nil
}

func (s *memUserStore) failPatches(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patchErr = err
}

func (s *memUserStore) favoritesOf(id uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.users[id].Favorites...)
}

// memDestinationStore covers the destination operations the services use.
type memDestinationStore struct {
	mu       sync.Mutex
	items    map[uuid.UUID]*domain.Destination
	patchErr error
}

func newMemDestinationStore(items ...*domain.Destination) *memDestinationStore {
	store := &memDestinationStore{items: make(map[uuid.UUID]*domain.Destination)}
	for _, item := range items {
		store.items[item.ID] = item.Clone()
	}
	return store
}

func (s *memDestinationStore) List(_ context.Context) ([]domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Destination
	for _, item := range s.items {
		out = append(out, *item.Clone())
	}
	return out, nil
}

func (s *memDestinationStore) ListSorted(ctx context.Context, _ string, _ bool) ([]domain.Destination, error) {
	return s.List(ctx)
}

func (s *memDestinationStore) ListByType(_ context.Context, t domain.DestinationType) ([]domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Destination
	for _, item := range s.items {
		if item.Type == t {
			out = append(out, *item.Clone())
		}
	}
	return out, nil
}

func (s *memDestinationStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Destination, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, false, nil
	}
	return item.Clone(), true, nil
}

func (s *memDestinationStore) Patch(_ context.Context, id uuid.UUID, patch domain.DestinationPatch) (*domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.patchErr != nil {
		return nil, s.patchErr
	}
	item, ok := s.items[id]
	if !ok {
		return nil, &resource.RemoteError{Op: "patch", Collection: "destinations", Status: http.StatusNotFound}
	}
	if patch.Rating != nil {
		item.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		item.Reviews = append([]domain.Review(nil), (*patch.Reviews)...)
	}
	return item.Clone(), nil
}
