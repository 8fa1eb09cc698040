package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/balance"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// TransferReader defines read operations for transfers
type TransferReader interface {
	FindTransferByID(ctx context.Context, userID string, transferID string) (*domain.Transfer, error)

	// ListTransfers returns transfers newest first. A non-empty accountID keeps
	// only transfers touching that account.
	ListTransfers(ctx context.Context, userID string, accountID string) ([]domain.Transfer, error)
}

// TransferWriter defines write operations for transfers
type TransferWriter interface {
	// SaveTransfer inserts the transfer and moves both balances atomically.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, changes balance.Changes) error

	// DeleteTransfer locks the transfer, asks reverse for the undo changes and
	// removes it with the balances restored in one unit of work.
	DeleteTransfer(ctx context.Context, userID string, transferID string, reverse func(domain.Transfer) (balance.Changes, error)) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
