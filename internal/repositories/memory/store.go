// Package memory keeps every repository in process memory. It backs the
// memory storage driver and the service tests.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
)

// Store implements all repository facades. One lock guards everything, so
// every balance mutation is serialized.
type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	transfers    map[string]domain.Transfer
	categories   map[string]domain.Category
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string]domain.Transaction),
		transfers:    make(map[string]domain.Transfer),
		categories:   make(map[string]domain.Category),
	}
}

// NewRepositoryProvider wires one fresh store into every slot.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := NewStore()
	return portsrepo.RepositoryProvider{
		AccountRepo:     s,
		TransactionRepo: s,
		TransferRepo:    s,
		CategoryRepo:    s,
		UserRepo:        s,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.TransferRepositoryFacade    = (*Store)(nil)
	_ portsrepo.CategoryRepositoryFacade    = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
)

// applyLocked applies changes to the user's accounts. Nothing is written
// unless every account exists. Callers hold the write lock.
func (s *Store) applyLocked(userID string, changes balance.Changes) error {
	touched := make(map[string]domain.Account, len(changes))
	for _, id := range changes.AccountIDs() {
		if a, ok := s.accounts[id]; ok && a.UserID == userID {
			touched[id] = a
		}
	}
	updated, err := balance.Apply(touched, changes)
	if err != nil {
		return err
	}
	for id, a := range updated {
		s.accounts[id] = a
	}
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
