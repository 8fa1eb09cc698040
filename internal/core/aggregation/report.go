// Package aggregation builds period reports and category summaries from transactions.
package aggregation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ParsePeriod accepts week, month or year (case-insensitive).
func ParsePeriod(s string) (domain.ReportPeriod, error) {
	switch p := domain.ReportPeriod(strings.ToLower(strings.TrimSpace(s))); p {
	case domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown report period %q, expected week, month or year", apperrors.ErrValidation, s)
}

// Window returns the half-open calendar range [start, end) of the current
// week (Sunday to Saturday), month or year that contains today.
func Window(period domain.ReportPeriod, today time.Time) (time.Time, time.Time) {
	today = domain.DateOf(today)
	switch period {
	case domain.PeriodWeek:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case domain.PeriodYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// BucketKey places a date into its bucket: weekday 1-7 with Sunday as 1 for
// week, day of month for month, month 1-12 for year.
func BucketKey(period domain.ReportPeriod, date time.Time) int {
	switch period {
	case domain.PeriodWeek:
		return int(date.Weekday()) + 1
	case domain.PeriodYear:
		return int(date.Month())
	default:
		return date.Day()
	}
}

// InWindow reports whether date lies in [start, end).
func InWindow(date, start, end time.Time) bool {
	return !date.Before(start) && date.Before(end)
}

// BuildReport buckets the transactions of the current period. Transactions
// outside the window are ignored; totals cover exactly the bucketed ones.
// Buckets without transactions are omitted. Sums that would overflow fail.
func BuildReport(txns []domain.Transaction, period domain.ReportPeriod, today time.Time) (domain.PeriodReport, error) {
	start, end := Window(period, today)
	report := domain.PeriodReport{
		Period:    period,
		StartDate: start,
		EndDate:   end.AddDate(0, 0, -1),
		Buckets:   []domain.ReportBucket{},
	}

	byKey := make(map[int]*domain.ReportBucket)
	for _, t := range txns {
		date := domain.DateOf(t.Date)
		if !InWindow(date, start, end) {
			continue
		}
		key := BucketKey(period, date)
		b, ok := byKey[key]
		if !ok {
			b = &domain.ReportBucket{Key: key}
			byKey[key] = b
		}
		var err error
		switch t.Type {
		case domain.Income:
			err = accumulate(t.Amount, &b.Income, &report.Totals.Income)
		case domain.Expense:
			err = accumulate(t.Amount, &b.Expense, &report.Totals.Expense)
		}
		if err != nil {
			return domain.PeriodReport{}, err
		}
	}

	for _, b := range byKey {
		report.Buckets = append(report.Buckets, *b)
	}
	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Key < report.Buckets[j].Key
	})
	// both sums are non-negative, so the difference cannot overflow
	report.Totals.Balance = report.Totals.Income - report.Totals.Expense
	return report, nil
}

// accumulate adds amount to every sum in dst.
func accumulate(amount domain.Money, dst ...*domain.Money) error {
	for _, d := range dst {
		sum, err := d.Add(amount)
		if err != nil {
			return err
		}
		*d = sum
	}
	return nil
}
