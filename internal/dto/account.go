package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,notblank,max=100"`
	AccountType    domain.AccountType `json:"type" binding:"required,oneof=cash bank credit savings wallet other"`
	InitialBalance Amount             `json:"balance" swaggertype:"number"` // Optional, may be negative
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,notblank,max=100"`
	AccountType *domain.AccountType `json:"type" binding:"omitempty,oneof=cash bank credit savings wallet other"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"id"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"type"`
	InitialBalance Amount             `json:"initialBalance" swaggertype:"number"`
	Balance        Amount             `json:"balance" swaggertype:"number"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		InitialBalance: Amount(acc.InitialBalance),
		Balance:        Amount(acc.Balance),
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// TotalBalanceResponse is the sum of all account balances of the user.
type TotalBalanceResponse struct {
	TotalBalance Amount `json:"totalBalance" swaggertype:"number"`
	AccountCount int    `json:"accountCount"`
}
