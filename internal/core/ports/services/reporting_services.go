package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// ReportingSvcFacade defines operations for generating reports
type ReportingSvcFacade interface {
	// GetReport buckets the current week, month or year.
	GetReport(ctx context.Context, userID string, params dto.ReportParams) (*domain.PeriodReport, error)

	// GetSummary aggregates transactions per category.
	GetSummary(ctx context.Context, userID string, params dto.SummaryParams) ([]domain.CategorySummary, error)

	// GetDashboard gathers report, summary, accounts and recent transactions in one call.
	GetDashboard(ctx context.Context, userID string, params dto.ReportParams) (*dto.DashboardResponse, error)
}
