package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
// Responses carry the derived edit state as of the service clock.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*dto.TransactionResponse, error)

	// ListTransactions filters, searches and pages the user's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionsByDay returns the filtered list grouped by calendar day with subtotals.
	ListTransactionsByDay(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]dto.DayGroupResponse, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)

	// UpdateTransaction replaces a transaction inside its edit window.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)

	// DeleteTransaction removes a transaction inside its edit window and reverses its balance effect.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
