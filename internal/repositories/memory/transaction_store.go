package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/core/query"
)

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.AccountID = cloneString(t.AccountID)
	return t
}

func (s *Store) FindTransactionByID(_ context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[transactionID]
	if !ok || t.UserID != userID {
		return nil, notFound("transaction", transactionID)
	}
	t = cloneTransaction(t)
	return &t, nil
}

func (s *Store) ListTransactions(_ context.Context, userID string, filter query.Filter) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Transaction{}
	for _, t := range s.transactions {
		if t.UserID == userID && filter.Matches(t) {
			out = append(out, cloneTransaction(t))
		}
	}
	return query.SortNewestFirst(out), nil
}

func (s *Store) CreateTransaction(_ context.Context, txn domain.Transaction, changes balance.Changes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transactions[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
	}
	if err := s.applyLocked(txn.UserID, changes); err != nil {
		return err
	}
	s.transactions[txn.TransactionID] = cloneTransaction(txn)
	return nil
}

func (s *Store) MutateTransaction(_ context.Context, userID string, transactionID string, mutate portsrepo.TransactionMutator) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.transactions[transactionID]
	if !ok || current.UserID != userID {
		return nil, notFound("transaction", transactionID)
	}

	next, changes, err := mutate(cloneTransaction(current))
	if err != nil {
		return nil, err
	}
	if err := s.applyLocked(userID, changes); err != nil {
		return nil, err
	}
	if next == nil {
		delete(s.transactions, transactionID)
		return nil, nil
	}
	stored := cloneTransaction(*next)
	s.transactions[transactionID] = stored
	out := cloneTransaction(stored)
	return &out, nil
}
