package query

import (
	"fmt"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/utils/pagination"
)

// GroupByDay buckets transactions by calendar date with income and expense
// subtotals. Groups appear in the order their date is first seen and keep
// the input order inside each group. Subtotals that would overflow fail.
func GroupByDay(txns []domain.Transaction) ([]domain.DayGroup, error) {
	index := make(map[string]int)
	groups := []domain.DayGroup{}

	for _, t := range txns {
		day := domain.DateOf(t.Date)
		key := domain.FormatDate(day)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.DayGroup{Date: day, Transactions: []domain.Transaction{}})
		}
		g := &groups[i]
		g.Transactions = append(g.Transactions, t)
		var err error
		switch t.Type {
		case domain.Income:
			g.Income, err = g.Income.Add(t.Amount)
		case domain.Expense:
			g.Expense, err = g.Expense.Add(t.Amount)
		}
		if err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// MaxPageSize caps the limit a caller may request.
const MaxPageSize = 500

// Paginate returns up to limit transactions from a newest-first list,
// starting after the position encoded in token. A limit of zero disables
// paging. nextToken is nil on the last page.
func Paginate(sorted []domain.Transaction, limit int, token string) ([]domain.Transaction, *string, error) {
	if limit < 0 || limit > MaxPageSize {
		return nil, nil, fmt.Errorf("%w: limit must be between 0 and %d", apperrors.ErrValidation, MaxPageSize)
	}

	start := 0
	if token != "" {
		cursor, err := pagination.DecodeToken(token)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		marker := domain.Transaction{TransactionID: cursor.ID, Date: cursor.Date}
		marker.CreatedAt = cursor.CreatedAt
		start = len(sorted)
		for i, t := range sorted {
			if NewestFirst(marker, t) {
				start = i
				break
			}
		}
	}

	rest := sorted[start:]
	if limit == 0 || len(rest) <= limit {
		page := make([]domain.Transaction, len(rest))
		copy(page, rest)
		return page, nil, nil
	}

	page := make([]domain.Transaction, limit)
	copy(page, rest[:limit])
	last := page[limit-1]
	next := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return page, &next, nil
}
