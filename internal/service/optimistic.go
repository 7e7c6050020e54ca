package service

import "github.com/voyago/voyago/internal/domain"

// applyOptimistic is the one optimistic-mutation sequence in the service:
// snapshot the identity, apply the local state (memory plus session store),
// attempt the remote sync, and restore the snapshot everywhere on failure.
// Callers hold s.mu, which keeps overlapping mutations from interleaving
// and so keeps the restored snapshot meaningful.
//
// The contract is at-most-eventually-consistent: readers see the optimistic
// state immediately, and a failed sync produces a visible rollback rather
// than a silent desync between memory, session, and the remote record.
func (s *AuthService) applyOptimistic(next *domain.User, sync func() error) error {
	snapshot := s.identity

	s.identity = next
	if err := s.sessions.Save(next); err != nil {
		s.identity = snapshot
		return err
	}

	if err := sync(); err != nil {
		s.identity = snapshot
		// The session must track the rollback even when its write fails;
		// the remote error is the one the caller acts on.
		_ = s.sessions.Save(snapshot)
		return err
	}
	return nil
}
