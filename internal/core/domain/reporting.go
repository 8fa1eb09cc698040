package domain

import "time"

// ReportPeriod selects the window and bucketing of a period report.
type ReportPeriod string

const (
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodYear  ReportPeriod = "year"
)

// ReportBucket holds income and expense sums for one bucket key.
// Key is the weekday (1=Sunday..7), day of month, or month (1..12).
type ReportBucket struct {
	Key     int   `json:"key"`
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
}

// Totals are computed over exactly the transactions placed into buckets.
type Totals struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Balance Money `json:"balance"`
}

// PeriodReport aggregates transactions of the current week, month or year.
type PeriodReport struct {
	Period    ReportPeriod   `json:"period"`
	StartDate time.Time      `json:"startDate"` // inclusive
	EndDate   time.Time      `json:"endDate"`   // inclusive
	Buckets   []ReportBucket `json:"buckets"`
	Totals    Totals         `json:"totals"`
}

// CategorySummary aggregates all transactions that share a category name.
type CategorySummary struct {
	Category string `json:"category"`
	Income   Money  `json:"income"`
	Expense  Money  `json:"expense"`
	Count    int    `json:"count"`
}

// Total is income plus expense, the summary sort key.
func (s CategorySummary) Total() Money {
	return s.Income + s.Expense
}

// DayGroup is the set of transactions sharing one calendar date.
type DayGroup struct {
	Date         time.Time     `json:"date"`
	Transactions []Transaction `json:"transactions"`
	Income       Money         `json:"income"`
	Expense      Money         `json:"expense"`
}
