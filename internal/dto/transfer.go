package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateTransferRequest moves money between two of the user's accounts.
type CreateTransferRequest struct {
	FromAccountID string `json:"fromAccountId" binding:"required"`
	ToAccountID   string `json:"toAccountId" binding:"required"`
	Amount        Amount `json:"amount" swaggertype:"number"` // zero or negative is rejected as an invalid transfer
	Description   string `json:"description" binding:"max=200"`
}

// ListTransfersParams filters the transfer history.
type ListTransfersParams struct {
	AccountID string `form:"accountId"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID    string    `json:"id"`
	FromAccountID string    `json:"fromAccountId"`
	ToAccountID   string    `json:"toAccountId"`
	Amount        Amount    `json:"amount" swaggertype:"number"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToTransferResponse converts a domain.Transfer.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        Amount(t.Amount),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransferResponses converts a slice of domain.Transfer.
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
