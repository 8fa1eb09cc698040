package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/editwindow"
	"github.com/SscSPs/money_tracker/internal/core/query"
)

// CreateTransactionRequest defines the data needed to record an income or expense.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      Amount                 `json:"amount" binding:"required,money" swaggertype:"number"`
	Description string                 `json:"description" binding:"required,notblank,max=200"`
	Category    string                 `json:"category" binding:"required,notblank,max=50"`
	Division    domain.Division        `json:"division" binding:"required,oneof=personal office"`
	Date        string                 `json:"date" binding:"required,calendardate" example:"2024-03-15"`
	AccountID   *string                `json:"accountId"` // Optional; empty string means no account
}

// UpdateTransactionRequest replaces every editable field of a transaction.
type UpdateTransactionRequest CreateTransactionRequest

// ToDomain builds the transaction fields carried by the request.
func (r CreateTransactionRequest) ToDomain() (domain.Transaction, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	var accountID *string
	if r.AccountID != nil && strings.TrimSpace(*r.AccountID) != "" {
		id := strings.TrimSpace(*r.AccountID)
		accountID = &id
	}
	return domain.Transaction{
		Type:        r.Type,
		Amount:      r.Amount.Money(),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Division:    r.Division,
		Date:        date,
		AccountID:   accountID,
	}, nil
}

// ToDomain builds the transaction fields carried by the request.
func (r UpdateTransactionRequest) ToDomain() (domain.Transaction, error) {
	return CreateTransactionRequest(r).ToDomain()
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"id"`
	Type          domain.TransactionType `json:"type"`
	Amount        Amount                 `json:"amount" swaggertype:"number"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	Division      domain.Division        `json:"division"`
	Date          string                 `json:"date"`
	AccountID     *string                `json:"accountId,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	IsEditable    bool                   `json:"isEditable"`
	EditableUntil time.Time              `json:"editableUntil"`
}

// ToTransactionResponse converts a domain.Transaction, deriving its edit state at now.
func ToTransactionResponse(txn domain.Transaction, policy editwindow.Policy, now time.Time) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Amount:        Amount(txn.Amount),
		Description:   txn.Description,
		Category:      txn.Category,
		Division:      txn.Division,
		Date:          domain.FormatDate(txn.Date),
		AccountID:     txn.AccountID,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.LastUpdatedAt,
		IsEditable:    policy.IsEditable(txn.CreatedAt, now),
		EditableUntil: policy.EditableUntil(txn.CreatedAt),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction.
func ToTransactionResponses(txns []domain.Transaction, policy editwindow.Policy, now time.Time) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn, policy, now)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	Division  string `form:"division"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Search    string `form:"search"`
	Limit     int    `form:"limit,default=0"`
	NextToken string `form:"nextToken"`
}

// ToFilter parses the query parameters into a query.Filter.
func (p ListTransactionsParams) ToFilter() (query.Filter, error) {
	f := query.Filter{
		Type:     domain.TransactionType(strings.ToLower(strings.TrimSpace(p.Type))),
		Category: strings.TrimSpace(p.Category),
		Division: domain.Division(strings.ToLower(strings.TrimSpace(p.Division))),
		Search:   p.Search,
	}
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return query.Filter{}, err
	}
	f.StartDate, f.EndDate = start, end
	if err := f.Validate(); err != nil {
		return query.Filter{}, err
	}
	return f, nil
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// DayGroupResponse is one calendar day of the grouped history.
type DayGroupResponse struct {
	Date         string                `json:"date"`
	Income       Amount                `json:"income" swaggertype:"number"`
	Expense      Amount                `json:"expense" swaggertype:"number"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToDayGroupResponses converts grouped transactions.
func ToDayGroupResponses(groups []domain.DayGroup, policy editwindow.Policy, now time.Time) []DayGroupResponse {
	res := make([]DayGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = DayGroupResponse{
			Date:         domain.FormatDate(g.Date),
			Income:       Amount(g.Income),
			Expense:      Amount(g.Expense),
			Transactions: ToTransactionResponses(g.Transactions, policy, now),
		}
	}
	return res
}

func parseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if s := strings.TrimSpace(startStr); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		start = &d
	}
	if s := strings.TrimSpace(endStr); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		end = &d
	}
	return start, end, nil
}
