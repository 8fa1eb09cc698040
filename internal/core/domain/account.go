package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// AccountType describes where the money of an account is kept.
type AccountType string

const (
	Cash    AccountType = "cash"
	Bank    AccountType = "bank"
	Credit  AccountType = "credit"
	Savings AccountType = "savings"
	Wallet  AccountType = "wallet"
	Other   AccountType = "other"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Cash, Bank, Credit, Savings, Wallet, Other:
		return true
	}
	return false
}

// MaxAccountNameLength is the longest account name accepted, in characters.
const MaxAccountNameLength = 100

// Account is a named store of money whose balance moves with linked transactions and transfers.
type Account struct {
	AccountID      string      `json:"accountID"`
	UserID         string      `json:"userID"`
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	InitialBalance Money       `json:"initialBalance"` // Fixed at creation
	Balance        Money       `json:"balance"`        // Mutated only by the balance engine
	AuditFields
}

// Validate checks name and type. Balances may be negative (credit accounts).
func (a Account) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: account name must be at most %d characters", apperrors.ErrValidation, MaxAccountNameLength)
	}
	if !a.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, a.AccountType)
	}
	return nil
}
