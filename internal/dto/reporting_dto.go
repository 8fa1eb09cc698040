package dto

import (
	"strings"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/query"
)

// ReportParams selects the period of a report.
type ReportParams struct {
	Period   string `form:"period,default=month"`
	Division string `form:"division"`
}

// SummaryParams narrows the category summary.
type SummaryParams struct {
	Division  string `form:"division"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ToFilter parses the summary parameters into a query.Filter.
func (p SummaryParams) ToFilter() (query.Filter, error) {
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return query.Filter{}, err
	}
	f := query.Filter{
		Division:  domain.Division(strings.ToLower(strings.TrimSpace(p.Division))),
		StartDate: start,
		EndDate:   end,
	}
	if err := f.Validate(); err != nil {
		return query.Filter{}, err
	}
	return f, nil
}

// ReportBucketResponse is one bucket of a period report.
type ReportBucketResponse struct {
	Key     int    `json:"_id"`
	Income  Amount `json:"income" swaggertype:"number"`
	Expense Amount `json:"expense" swaggertype:"number"`
}

// TotalsResponse holds income, expense and their difference.
type TotalsResponse struct {
	Income  Amount `json:"income" swaggertype:"number"`
	Expense Amount `json:"expense" swaggertype:"number"`
	Balance Amount `json:"balance" swaggertype:"number"`
}

// ReportResponse defines the data returned for a period report.
type ReportResponse struct {
	Period    domain.ReportPeriod    `json:"period"`
	StartDate string                 `json:"startDate"`
	EndDate   string                 `json:"endDate"`
	Data      []ReportBucketResponse `json:"data"`
	Totals    TotalsResponse         `json:"totals"`
}

// ToReportResponse converts a domain.PeriodReport.
func ToReportResponse(r *domain.PeriodReport) ReportResponse {
	buckets := make([]ReportBucketResponse, len(r.Buckets))
	for i, b := range r.Buckets {
		buckets[i] = ReportBucketResponse{Key: b.Key, Income: Amount(b.Income), Expense: Amount(b.Expense)}
	}
	return ReportResponse{
		Period:    r.Period,
		StartDate: domain.FormatDate(r.StartDate),
		EndDate:   domain.FormatDate(r.EndDate),
		Data:      buckets,
		Totals: TotalsResponse{
			Income:  Amount(r.Totals.Income),
			Expense: Amount(r.Totals.Expense),
			Balance: Amount(r.Totals.Balance),
		},
	}
}

// CategorySummaryResponse is one row of the category summary.
type CategorySummaryResponse struct {
	Category string `json:"_id"`
	Income   Amount `json:"income" swaggertype:"number"`
	Expense  Amount `json:"expense" swaggertype:"number"`
	Count    int    `json:"count"`
}

// ToCategorySummaryResponses converts a category summary.
func ToCategorySummaryResponses(summary []domain.CategorySummary) []CategorySummaryResponse {
	res := make([]CategorySummaryResponse, len(summary))
	for i, s := range summary {
		res[i] = CategorySummaryResponse{Category: s.Category, Income: Amount(s.Income), Expense: Amount(s.Expense), Count: s.Count}
	}
	return res
}

// DashboardResponse bundles the data of the home screen.
type DashboardResponse struct {
	Report       ReportResponse            `json:"report"`
	Summary      []CategorySummaryResponse `json:"summary"`
	Accounts     []AccountResponse         `json:"accounts"`
	TotalBalance Amount                    `json:"totalBalance" swaggertype:"number"`
	Recent       []TransactionResponse     `json:"recent"`
}
