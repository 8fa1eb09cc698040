package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of the user.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// GetTotalBalance sums the balances of all accounts of the user.
	GetTotalBalance(ctx context.Context, userID string) (domain.Money, int, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account whose balance starts at its initial balance.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount renames or retypes an account.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that nothing references any more.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// TransferSvcFacade moves money between accounts.
type TransferSvcFacade interface {
	// TransferMoney debits one account and credits the other atomically.
	TransferMoney(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.Transfer, error)

	// ListTransfers returns the transfer history, optionally for one account.
	ListTransfers(ctx context.Context, userID string, accountID string) ([]domain.Transfer, error)

	// DeleteTransfer undoes a transfer and restores both balances.
	DeleteTransfer(ctx context.Context, userID string, transferID string) error
}
