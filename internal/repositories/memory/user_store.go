package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func (s *Store) findUserLocked(match func(domain.User) bool) (*domain.User, bool) {
	for _, u := range s.users {
		if match(u) {
			u.Email = cloneString(u.Email)
			u.GoogleSubject = cloneString(u.GoogleSubject)
			return &u, true
		}
	}
	return nil, false
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.findUserLocked(func(u domain.User) bool { return u.UserID == userID }); ok {
		return u, nil
	}
	return nil, notFound("user", userID)
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.findUserLocked(func(u domain.User) bool { return sameName(u.Username, username) }); ok {
		return u, nil
	}
	return nil, notFound("user", username)
}

func (s *Store) FindUserByGoogleSubject(_ context.Context, subject string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match := func(u domain.User) bool { return u.GoogleSubject != nil && *u.GoogleSubject == subject }
	if u, ok := s.findUserLocked(match); ok {
		return u, nil
	}
	return nil, notFound("google user", subject)
}

func (s *Store) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.findUserLocked(func(u domain.User) bool {
		return u.UserID == user.UserID || sameName(u.Username, user.Username)
	}); taken {
		return fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, user.Username)
	}
	s.users[user.UserID] = user
	return nil
}
