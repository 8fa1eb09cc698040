package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/query"
)

// TransactionMutator receives the locked current row and decides its fate:
// the replacement row (nil deletes it) and the balance changes to apply in
// the same unit of work. Returning an error aborts without side effects.
type TransactionMutator func(current domain.Transaction) (*domain.Transaction, balance.Changes, error)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the user's transactions matching the structured
	// predicates of filter, newest first. Implementations may ignore Search.
	ListTransactions(ctx context.Context, userID string, filter query.Filter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// CreateTransaction inserts txn and applies changes atomically.
	// A missing account yields apperrors.ErrAccountNotFound and nothing is written.
	CreateTransaction(ctx context.Context, txn domain.Transaction, changes balance.Changes) error

	// MutateTransaction locks the row, runs mutate and persists its outcome with
	// the balance changes in one unit of work. It returns the new row, or nil on delete.
	MutateTransaction(ctx context.Context, userID string, transactionID string, mutate TransactionMutator) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
