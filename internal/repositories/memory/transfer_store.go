package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func (s *Store) FindTransferByID(_ context.Context, userID string, transferID string) (*domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transfers[transferID]
	if !ok || t.UserID != userID {
		return nil, notFound("transfer", transferID)
	}
	return &t, nil
}

func (s *Store) ListTransfers(_ context.Context, userID string, accountID string) ([]domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Transfer{}
	for _, t := range s.transfers {
		if t.UserID == userID && (accountID == "" || t.Involves(accountID)) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].TransferID > out[j].TransferID
	})
	return out, nil
}

func (s *Store) SaveTransfer(_ context.Context, transfer domain.Transfer, changes balance.Changes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transfers[transfer.TransferID]; exists {
		return fmt.Errorf("%w: transfer %s", apperrors.ErrDuplicate, transfer.TransferID)
	}
	if err := s.applyLocked(transfer.UserID, changes); err != nil {
		return err
	}
	s.transfers[transfer.TransferID] = transfer
	return nil
}

func (s *Store) DeleteTransfer(_ context.Context, userID string, transferID string, reverse func(domain.Transfer) (balance.Changes, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transfers[transferID]
	if !ok || t.UserID != userID {
		return notFound("transfer", transferID)
	}
	changes, err := reverse(t)
	if err != nil {
		return err
	}
	if err := s.applyLocked(userID, changes); err != nil {
		return err
	}
	delete(s.transfers, transferID)
	return nil
}
