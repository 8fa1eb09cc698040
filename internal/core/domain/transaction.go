package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// TransactionType indicates whether a transaction brings money in or takes it out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Division separates personal from office money.
type Division string

const (
	Personal Division = "personal"
	Office   Division = "office"
)

// IsValid reports whether d is a known division.
func (d Division) IsValid() bool {
	return d == Personal || d == Office
}

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 200

// Transaction is a single income or expense entry, optionally linked to an account.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	Amount        Money           `json:"amount"` // Always positive; the sign comes from Type
	Description   string          `json:"description"`
	Category      string          `json:"category"` // Category name, not an ID
	Division      Division        `json:"division"`
	Date          time.Time       `json:"date"` // Calendar date at midnight UTC
	AccountID     *string         `json:"accountID,omitempty"`
	AuditFields
}

// HasAccount reports whether the transaction is linked to an account.
func (t Transaction) HasAccount() bool {
	return t.AccountID != nil && *t.AccountID != ""
}

// Validate checks the field-level invariants of a transaction.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: type must be income or expense", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", apperrors.ErrValidation, MaxDescriptionLength)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if !t.Division.IsValid() {
		return fmt.Errorf("%w: division must be personal or office", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if t.AccountID != nil && *t.AccountID == "" {
		return fmt.Errorf("%w: accountId must not be empty when provided", apperrors.ErrValidation)
	}
	return nil
}

// SignedAmount is +Amount for income and -Amount for expense.
func (t Transaction) SignedAmount() Money {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}
