package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/checkin/backend/internal/apierror"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/service"
)

// InsightsHandler serves check-in analytics
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetStats returns the 30-day dashboard
// GET /api/v1/checkins/stats
func (h *InsightsHandler) GetStats(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	stats, err := h.insightsService.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetWindowInsights returns insights for a named window
// GET /api/v1/checkins/insights/:window
func (h *InsightsHandler) GetWindowInsights(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	window := models.InsightWindow(c.Param("window"))
	insights, err := h.insightsService.GetWindowInsights(c.Request.Context(), userID, window)
	if err != nil {
		writeServiceError(c, err, "failed to compute window insights")
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetSeries returns the gap-filled daily series for an explicit range
// GET /api/v1/checkins/series?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *InsightsHandler) GetSeries(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	from, hasFrom, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, hasTo, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if !hasFrom || !hasTo {
		apierror.WriteProblem(c, apierror.NewInvalidDateRangeError(apierror.GetRequestID(c), "from and to are required"))
		return
	}

	series, err := h.insightsService.GetDailySeries(c.Request.Context(), userID, from, to)
	if err != nil {
		writeServiceError(c, err, "failed to compute daily series")
		return
	}

	c.JSON(http.StatusOK, series)
}
