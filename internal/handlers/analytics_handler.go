package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "wealthwatch/internal/errors"
	"wealthwatch/internal/services"
)

// AnalyticsHandler serves the aggregation endpoints. Results are recomputed
// from the full expense set on every request.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Stats handles GET /api/expenses/stats/summary: lifetime totals, current
// month spend, average daily spend, and the per-category breakdown.
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	stats, err := h.analyticsService.SummaryStats(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// Summary handles GET /api/analytics/summary: total spend, average expense
// and the top category ("N/A" when the user has no expenses).
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	summary, err := h.analyticsService.AnalyticsSummary(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
