package aggregation

import (
	"sort"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// Summarize groups transactions by category name with income, expense and
// count per group, largest income+expense first. Ties are broken by name so
// the order is deterministic.
func Summarize(txns []domain.Transaction) ([]domain.CategorySummary, error) {
	index := make(map[string]int)
	out := []domain.CategorySummary{}

	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, domain.CategorySummary{Category: t.Category})
		}
		var err error
		switch t.Type {
		case domain.Income:
			err = accumulate(t.Amount, &out[i].Income)
		case domain.Expense:
			err = accumulate(t.Amount, &out[i].Expense)
		}
		if err != nil {
			return nil, err
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Total(), out[j].Total()
		if ti != tj {
			return ti > tj
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// SummaryTotals folds a summary back into income/expense/balance totals.
func SummaryTotals(summary []domain.CategorySummary) (domain.Totals, error) {
	var totals domain.Totals
	for _, s := range summary {
		if err := accumulate(s.Income, &totals.Income); err != nil {
			return domain.Totals{}, err
		}
		if err := accumulate(s.Expense, &totals.Expense); err != nil {
			return domain.Totals{}, err
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals, nil
}
