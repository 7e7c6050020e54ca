package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago/internal/domain"
	"github.com/voyago/voyago/internal/repository/ports"
	"github.com/voyago/voyago/internal/session"
	"github.com/voyago/voyago/internal/util"
)

const defaultAvatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AuthService owns the in-memory identity. It is the only writer; readers
// get defensive copies. The mutex also serializes favorite toggles so a
// sequence of toggles resolves in issuance order.
type AuthService struct {
	users    ports.UserStore
	sessions session.Store

	mu       sync.Mutex
	identity *domain.User

	now func() time.Time
}

func NewAuthService(users ports.UserStore, sessions session.Store) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

// Restore loads a previously persisted identity from the session store.
// Called once at process start; a missing session leaves the service
// anonymous without error.
func (s *AuthService) Restore() (*domain.User, error) {
	user, err := s.sessions.Load()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = user.Clone()
	return user.Clone(), nil
}

// Current returns a copy of the authenticated identity, or nil when
// anonymous.
func (s *AuthService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.Clone()
}

func (s *AuthService) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Login resolves the username through the store and verifies the password
// locally; the password itself is never sent as a query parameter. Exactly
// one username match is required: zero matches or a bad password fail with
// ErrInvalidCredentials, more than one with ErrAmbiguousCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	matches, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	switch {
	case len(matches) == 0:
		return nil, ErrInvalidCredentials
	case len(matches) > 1:
		return nil, fmt.Errorf("%w: %d records match username %q", ErrAmbiguousCredentials, len(matches), username)
	}

	match := matches[0]
	if !util.VerifyPassword(password, match.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := match.Sanitized()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessions.Save(identity); err != nil {
		return nil, err
	}
	s.identity = identity
	return identity.Clone(), nil
}

type RegistrationInput struct {
	Username  string
	Email     string
	Password  string
	Bio       string
	AvatarURL string
}

// Register creates a new user with an empty favorites set. Username and
// email uniqueness are checked against the store before the insert; the
// backend itself enforces nothing.
func (s *AuthService) Register(ctx context.Context, input RegistrationInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", ErrValidation)
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if taken, err := s.identityTaken(ctx, username, email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	} else if taken != "" {
		return nil, fmt.Errorf("%w: %s already taken", ErrRegistrationFailed, taken)
	}

	encoded, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	avatar := strings.TrimSpace(input.AvatarURL)
	if avatar == "" {
		avatar = defaultAvatarBase + url.QueryEscape(email)
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		Password:  encoded,
		Bio:       strings.TrimSpace(input.Bio),
		AvatarURL: avatar,
		Favorites: []uuid.UUID{},
		CreatedAt: s.now().UTC(),
	}

	stored, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	identity := stored.Sanitized()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessions.Save(identity); err != nil {
		return nil, err
	}
	s.identity = identity
	return identity.Clone(), nil
}

// Logout clears the session store and the in-memory identity. It always
// succeeds from the caller's point of view; a store error only means the
// stale session file survived.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	return s.sessions.Clear()
}

// UpdateProfile patches the remote record first and only then replaces the
// local identity with the server's response. A transport failure leaves the
// prior identity untouched; there is nothing optimistic here. Once the
// remote patch lands the new identity is adopted even when the session
// write fails, so memory never lags the durable record.
func (s *AuthService) UpdateProfile(ctx context.Context, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsZero() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	if patch.Password != nil {
		if err := util.ValidatePassword(*patch.Password); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		encoded, err := util.DerivePassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &encoded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, ErrNotAuthenticated
	}

	stored, err := s.users.Patch(ctx, s.identity.ID, patch)
	if err != nil {
		return nil, err
	}

	identity := stored.Sanitized()
	s.identity = identity
	if err := s.sessions.Save(identity); err != nil {
		return nil, err
	}
	return identity.Clone(), nil
}

// ToggleFavorite adds the destination to the favorites set when absent and
// removes it when present. The local identity and session are updated
// before the remote sync; a failed sync rolls both back (see optimistic.go).
func (s *AuthService) ToggleFavorite(ctx context.Context, destinationID uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, ErrNotAuthenticated
	}

	var next *domain.User
	if s.identity.IsFavorite(destinationID) {
		next = s.identity.WithoutFavorite(destinationID)
	} else {
		next = s.identity.WithFavorite(destinationID)
	}

	err := s.applyOptimistic(next, func() error {
		_, patchErr := s.users.Patch(ctx, next.ID, domain.UserPatch{Favorites: &next.Favorites})
		return patchErr
	})
	if err != nil {
		return nil, err
	}
	return s.identity.Clone(), nil
}

// identityTaken reports which of username or email is already registered,
// or the empty string when both are free.
func (s *AuthService) identityTaken(ctx context.Context, username, email string) (string, error) {
	byName, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if len(byName) > 0 {
		return "username", nil
	}
	byEmail, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(byEmail) > 0 {
		return "email", nil
	}
	return "", nil
}
