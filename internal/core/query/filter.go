// Package query filters, searches, orders and groups transaction lists.
// Every function here is pure: inputs are never modified.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Filter selects transactions. A zero field matches everything; set fields
// combine with AND.
type Filter struct {
	Type      domain.TransactionType
	Category  string
	Division  domain.Division
	StartDate *time.Time // inclusive calendar date
	EndDate   *time.Time // inclusive calendar date
	Search    string     // case-insensitive substring of description or category
}

// Validate rejects unknown enum values and inverted date ranges.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, f.Type)
	}
	if f.Division != "" && !f.Division.IsValid() {
		return fmt.Errorf("%w: unknown division %q", apperrors.ErrValidation, f.Division)
	}
	if f.StartDate != nil && f.EndDate != nil && domain.DateOf(*f.StartDate).After(domain.DateOf(*f.EndDate)) {
		return fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}
	return nil
}

// Matches reports whether t passes every set predicate.
func (f Filter) Matches(t domain.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Division != "" && t.Division != f.Division {
		return false
	}
	d := domain.DateOf(t.Date)
	if f.StartDate != nil && d.Before(domain.DateOf(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && d.After(domain.DateOf(*f.EndDate)) {
		return false
	}
	return MatchesSearch(t, f.Search)
}

// MatchesSearch is the free-text part of Filter on its own.
func MatchesSearch(t domain.Transaction, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

// Apply returns the matching transactions in their original order.
func Apply(txns []domain.Transaction, f Filter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Search is Apply with only a search term.
func Search(txns []domain.Transaction, term string) []domain.Transaction {
	return Apply(txns, Filter{Search: term})
}

// NewestFirst reports whether a sorts before b in list order:
// date desc, then createdAt desc, then id desc.
func NewestFirst(a, b domain.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.TransactionID > b.TransactionID
}

// SortNewestFirst returns a sorted copy of txns.
func SortNewestFirst(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool { return NewestFirst(out[i], out[j]) })
	return out
}
