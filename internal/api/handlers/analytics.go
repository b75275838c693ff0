package handlers

import (
	"net/http"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/response"
	"github.com/tradejournal/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradejournal/Trade-Journal-Backend/internal/service"
)

// AnalyticsHandler handles HTTP requests for portfolio analytics endpoints.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	snapshotService  *service.SnapshotService
}

// NewAnalyticsHandler creates a new AnalyticsHandler with the provided service dependencies.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, snapshotService *service.SnapshotService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		snapshotService:  snapshotService,
	}
}

// Summary handles GET requests for the portfolio-level analytics summary.
//
// Endpoint: GET /api/analytics/summary
// Response: 200 OK with AnalyticsSummary
// Error: 500 Internal Server Error if computation fails
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.analyticsService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeAnalytics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// CumulativePnL handles GET requests for the cumulative P&L chart series.
//
// Endpoint: GET /api/analytics/cumulative-pnl
// Response: 200 OK with array of CumulativePnlPoint
// Error: 500 Internal Server Error if computation fails
func (h *AnalyticsHandler) CumulativePnL(w http.ResponseWriter, _ *http.Request) {
	points, err := h.analyticsService.GetCumulativePnL()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeAnalytics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// MonthlyPerformance handles GET requests for the live monthly rollups.
//
// Endpoint: GET /api/analytics/monthly
// Response: 200 OK with array of MonthlyPerformance, most recent month first
// Error: 500 Internal Server Error if computation fails
func (h *AnalyticsHandler) MonthlyPerformance(w http.ResponseWriter, _ *http.Request) {
	rows, err := h.analyticsService.GetMonthlyPerformance()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeAnalytics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// Dashboard handles GET requests for the combined dashboard payload:
// summary, cumulative P&L series and monthly rollups in one response.
//
// Endpoint: GET /api/analytics/dashboard
// Response: 200 OK with DashboardResponse
// Error: 500 Internal Server Error if computation fails
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsService.GetDashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeAnalytics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

// MonthlySnapshot handles GET requests for the persisted monthly rollups.
//
// Endpoint: GET /api/analytics/monthly/snapshot
// Response: 200 OK with array of MonthlyPerformanceMaterialized
// Error: 500 Internal Server Error if retrieval fails
func (h *AnalyticsHandler) MonthlySnapshot(w http.ResponseWriter, _ *http.Request) {
	rows, err := h.snapshotService.GetMonthlyPerformanceSnapshot()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// RefreshMonthlySnapshot handles POST requests to rebuild the persisted
// monthly rollups from the trade table.
//
// Endpoint: POST /api/analytics/monthly/refresh
// Response: 204 No Content on success
// Error: 500 Internal Server Error if the refresh fails
func (h *AnalyticsHandler) RefreshMonthlySnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.RefreshMonthlyPerformance(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
