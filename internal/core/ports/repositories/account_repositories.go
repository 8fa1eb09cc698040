package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account owned by userID.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of a user ordered by name.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A name clash returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount changes name and type. Balances are never written here.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. It returns apperrors.ErrConflict while
	// any transaction or transfer still references the account.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
