package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/aggregation"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/query"
	"github.com/SscSPs/money_tracker/internal/dto"
	"golang.org/x/sync/errgroup"
)

// RecentTransactionsLimit is how many transactions the dashboard shows.
const RecentTransactionsLimit = 5

type reportingService struct {
	BaseService
	txnRepo     portsrepo.TransactionReader
	accountRepo portsrepo.AccountReader
}

// NewReportingService creates the reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, accountRepo portsrepo.AccountReader, options ...Option) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(options...),
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

func parseDivision(s string) (domain.Division, error) {
	d := domain.Division(strings.ToLower(strings.TrimSpace(s)))
	if d != "" && !d.IsValid() {
		return "", fmt.Errorf("%w: division must be personal or office", apperrors.ErrValidation)
	}
	return d, nil
}

// periodTransactions loads the transactions inside the current period's window.
func (s *reportingService) periodTransactions(ctx context.Context, userID string, params dto.ReportParams) (domain.ReportPeriod, []domain.Transaction, error) {
	period, err := aggregation.ParsePeriod(params.Period)
	if err != nil {
		return "", nil, err
	}
	division, err := parseDivision(params.Division)
	if err != nil {
		return "", nil, err
	}

	start, end := aggregation.Window(period, s.Today())
	last := end.AddDate(0, 0, -1)
	filter := query.Filter{Division: division, StartDate: &start, EndDate: &last}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report", slog.String("period", string(period)))
		return "", nil, err
	}
	return period, query.Apply(txns, filter), nil
}

func (s *reportingService) GetReport(ctx context.Context, userID string, params dto.ReportParams) (*domain.PeriodReport, error) {
	period, txns, err := s.periodTransactions(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	report, err := aggregation.BuildReport(txns, period, s.Today())
	if err != nil {
		s.LogError(ctx, err, "Failed to build report", slog.String("period", string(period)))
		return nil, err
	}
	s.LogDebug(ctx, "Report built",
		slog.String("period", string(period)),
		slog.Int("buckets", len(report.Buckets)))
	return &report, nil
}

func (s *reportingService) GetSummary(ctx context.Context, userID string, params dto.SummaryParams) ([]domain.CategorySummary, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, err
	}
	summary, err := aggregation.Summarize(query.Apply(txns, filter))
	if err != nil {
		s.LogError(ctx, err, "Failed to build summary")
		return nil, err
	}
	return summary, nil
}

// GetDashboard loads the period report and the account list concurrently.
// The summary covers the same period as the report.
func (s *reportingService) GetDashboard(ctx context.Context, userID string, params dto.ReportParams) (*dto.DashboardResponse, error) {
	var (
		period   domain.ReportPeriod
		txns     []domain.Transaction
		recent   []domain.Transaction
		accounts []domain.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		period, txns, err = s.periodTransactions(gctx, userID, params)
		return err
	})
	g.Go(func() error {
		all, err := s.txnRepo.ListTransactions(gctx, userID, query.Filter{})
		if err != nil {
			return err
		}
		recent, _, err = query.Paginate(query.SortNewestFirst(all), RecentTransactionsLimit, "")
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.accountRepo.ListAccounts(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total, err := sumBalances(accounts)
	if err != nil {
		return nil, err
	}
	report, err := aggregation.BuildReport(txns, period, s.Today())
	if err != nil {
		return nil, err
	}
	summary, err := aggregation.Summarize(txns)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	return &dto.DashboardResponse{
		Report:       dto.ToReportResponse(&report),
		Summary:      dto.ToCategorySummaryResponses(summary),
		Accounts:     dto.ToListAccountResponse(accounts),
		TotalBalance: dto.Amount(total),
		Recent:       dto.ToTransactionResponses(recent, s.editPolicy, s.Now()),
	}, nil
}
