package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report, summary and dashboard routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/transactions/report", h.getReport)
	rg.GET("/transactions/summary", h.getSummary)
	rg.GET("/dashboard", h.getDashboard)
}

// getReport godoc
// @Summary Income and expense per period bucket
// @Description week buckets by weekday (1=Sunday..7), month by day of month, year by month (1..12). Empty buckets are omitted.
// @Tags reports
// @Produce json
// @Param period query string false "week, month or year" default(month)
// @Param division query string false "personal or office"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse "Unknown period"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /transactions/report [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	report, err := h.reportingService.GetReport(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	respondData(c, http.StatusOK, dto.ToReportResponse(report))
}

// getSummary godoc
// @Summary Totals per category
// @Description Sorted by expense, then income, both descending
// @Tags reports
// @Produce json
// @Param division query string false "personal or office"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate summary"
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to generate summary")
		return
	}
	respondData(c, http.StatusOK, dto.ToCategorySummaryResponses(summary))
}

// getDashboard godoc
// @Summary Home screen data
// @Description Period report, category summary, accounts with total balance and the most recent transactions
// @Tags reports
// @Produce json
// @Param period query string false "week, month or year" default(month)
// @Param division query string false "personal or office"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "Unknown period"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to load dashboard")
		return
	}
	respondData(c, http.StatusOK, dashboard)
}
