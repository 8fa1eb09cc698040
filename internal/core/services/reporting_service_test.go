package services_test

import (
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

func (s *serviceSuite) addOn(date string, typ domain.TransactionType, amount domain.Money, category string, division domain.Division) {
	req := txnReq(typ, amount, "")
	req.Date, req.Category, req.Division = date, category, division
	_, err := s.transactions.CreateTransaction(s.ctx, s.userID, req)
	s.Require().NoError(err)
}

func (s *serviceSuite) TestGetReport() {
	// The clock sits on Wednesday 2024-05-15; that week runs Sunday 12th to Saturday 18th.
	s.addOn("2024-05-12", domain.Income, 1000, "Salary", domain.Office)
	s.addOn("2024-05-15", domain.Expense, 200, "Food", domain.Personal)
	s.addOn("2024-05-15", domain.Expense, 50, "Food", domain.Office)
	s.addOn("2024-05-11", domain.Expense, 999, "Food", domain.Personal)
	s.addOn("2023-12-31", domain.Income, 7, "Salary", domain.Personal)

	week, err := s.reporting.GetReport(s.ctx, s.userID, dto.ReportParams{Period: "week"})
	s.Require().NoError(err)
	s.Equal("2024-05-12", domain.FormatDate(week.StartDate))
	s.Equal("2024-05-18", domain.FormatDate(week.EndDate))
	s.Require().Len(week.Buckets, 2)
	s.Equal(domain.ReportBucket{Key: 1, Income: 1000}, week.Buckets[0], "Sunday is 1")
	s.Equal(domain.ReportBucket{Key: 4, Expense: 250}, week.Buckets[1])
	s.Equal(domain.Totals{Income: 1000, Expense: 250, Balance: 750}, week.Totals)

	month, err := s.reporting.GetReport(s.ctx, s.userID, dto.ReportParams{Period: "month", Division: "personal"})
	s.Require().NoError(err)
	s.Equal([]int{11, 15}, bucketKeys(month.Buckets))
	s.Equal(domain.Money(1199), month.Totals.Expense)

	year, err := s.reporting.GetReport(s.ctx, s.userID, dto.ReportParams{Period: "YEAR"})
	s.Require().NoError(err)
	s.Equal([]int{5}, bucketKeys(year.Buckets))
	s.Equal(domain.Money(1000), year.Totals.Income, "last year's income is outside the window")

	_, err = s.reporting.GetReport(s.ctx, s.userID, dto.ReportParams{Period: "decade"})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.reporting.GetReport(s.ctx, s.userID, dto.ReportParams{Period: "week", Division: "family"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func bucketKeys(buckets []domain.ReportBucket) []int {
	keys := make([]int, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}

func (s *serviceSuite) TestGetSummary() {
	s.addOn("2024-05-01", domain.Expense, 300, "Food", domain.Personal)
	s.addOn("2024-05-02", domain.Expense, 200, "Food", domain.Personal)
	s.addOn("2024-05-03", domain.Income, 1000, "Salary", domain.Office)
	s.addOn("2024-05-04", domain.Expense, 100, "Transport", domain.Personal)

	summary, err := s.reporting.GetSummary(s.ctx, s.userID, dto.SummaryParams{})
	s.Require().NoError(err)
	s.Require().Len(summary, 3)
	s.Equal("Salary", summary[0].Category)
	s.Equal("Food", summary[1].Category)
	s.Equal(2, summary[1].Count)
	s.Equal(domain.Money(500), summary[1].Expense)

	personal, err := s.reporting.GetSummary(s.ctx, s.userID, dto.SummaryParams{Division: "personal", StartDate: "2024-05-02"})
	s.Require().NoError(err)
	s.Require().Len(personal, 2)
	s.Equal(domain.Money(200), personal[0].Expense)
}

func (s *serviceSuite) TestGetDashboard() {
	acc := s.newAccount("Main", 100)
	for i := 0; i < 7; i++ {
		_, err := s.transactions.CreateTransaction(s.ctx, s.userID, txnReq(domain.Expense, 10, acc))
		s.Require().NoError(err)
	}

	dash, err := s.reporting.GetDashboard(s.ctx, s.userID, dto.ReportParams{Period: "month"})
	s.Require().NoError(err)
	s.Len(dash.Recent, 5)
	s.Len(dash.Accounts, 1)
	s.Equal(dto.Amount(30), dash.TotalBalance)
	s.Equal(dto.Amount(70), dash.Report.Totals.Expense)
	s.Require().Len(dash.Summary, 1)
	s.Equal(7, dash.Summary[0].Count)
}
