package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func (s *Store) FindAccountByID(_ context.Context, userID string, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountID]
	if !ok || a.UserID != userID {
		return nil, notFound("account", accountID)
	}
	return &a, nil
}

func (s *Store) ListAccounts(_ context.Context, userID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Account{}
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, nil
}

func (s *Store) nameTakenLocked(userID, accountID, name string) bool {
	for _, a := range s.accounts {
		if a.UserID == userID && a.AccountID != accountID && sameName(a.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
	}
	if s.nameTakenLocked(account.UserID, account.AccountID, account.Name) {
		return fmt.Errorf("%w: account named %q", apperrors.ErrDuplicate, account.Name)
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.accounts[account.AccountID]
	if !ok || current.UserID != account.UserID {
		return notFound("account", account.AccountID)
	}
	if s.nameTakenLocked(account.UserID, account.AccountID, account.Name) {
		return fmt.Errorf("%w: account named %q", apperrors.ErrDuplicate, account.Name)
	}
	current.Name = account.Name
	current.AccountType = account.AccountType
	current.LastUpdatedAt = account.LastUpdatedAt
	current.LastUpdatedBy = account.LastUpdatedBy
	s.accounts[account.AccountID] = current
	return nil
}

func (s *Store) DeleteAccount(_ context.Context, userID string, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok || a.UserID != userID {
		return notFound("account", accountID)
	}
	for _, t := range s.transactions {
		if t.AccountID != nil && *t.AccountID == accountID {
			return fmt.Errorf("%w: account %s has transactions", apperrors.ErrConflict, accountID)
		}
	}
	for _, t := range s.transfers {
		if t.Involves(accountID) {
			return fmt.Errorf("%w: account %s has transfers", apperrors.ErrConflict, accountID)
		}
	}
	delete(s.accounts, accountID)
	return nil
}
