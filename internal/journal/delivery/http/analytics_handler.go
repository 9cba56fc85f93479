package http

import (
	"net/http"

	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles HTTP requests for performance analytics.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

// RegisterRoutes registers the analytics routes to the Echo group.
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/summary", h.GetSummary)
	g.GET("/equity-curve", h.GetEquityCurve)
	g.GET("/drawdown", h.GetDrawdown)
	g.GET("/risk-of-ruin", h.GetRiskOfRuin)
	g.GET("/system-quality", h.GetSystemQuality)
	g.GET("/excursion", h.GetExcursion)
	g.GET("/behavior", h.GetBehavior)
	g.GET("/emotions", h.GetEmotionBreakdown)
	g.GET("/strategies", h.GetStrategyBreakdown)
}

// GetSummary godoc
// @Summary Dashboard headline stats
// @Description All-time totals plus 30-day deltas; served from cache when fresh
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.SummaryReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	report, err := h.analyticsService.Summary(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetEquityCurve godoc
// @Summary Cumulative P&L curve
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {array} metrics.EquityPoint
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/equity-curve [get]
func (h *AnalyticsHandler) GetEquityCurve(c echo.Context) error {
	points, err := h.analyticsService.EquityCurve(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, points)
}

// GetDrawdown godoc
// @Summary Drawdown series and extremes
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.DrawdownReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/drawdown [get]
func (h *AnalyticsHandler) GetDrawdown(c echo.Context) error {
	report, err := h.analyticsService.Drawdown(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetRiskOfRuin godoc
// @Summary Analytic risk of ruin
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.RuinReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/risk-of-ruin [get]
func (h *AnalyticsHandler) GetRiskOfRuin(c echo.Context) error {
	report, err := h.analyticsService.RiskOfRuin(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetSystemQuality godoc
// @Summary Expectancy, SQN and Sortino
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.QualityReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/system-quality [get]
func (h *AnalyticsHandler) GetSystemQuality(c echo.Context) error {
	report, err := h.analyticsService.SystemQuality(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetExcursion godoc
// @Summary MFE/MAE scatter and exit efficiency
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.ExcursionReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/excursion [get]
func (h *AnalyticsHandler) GetExcursion(c echo.Context) error {
	report, err := h.analyticsService.Excursion(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetBehavior godoc
// @Summary Mistake cost and discipline score
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {object} metrics.BehaviorReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/behavior [get]
func (h *AnalyticsHandler) GetBehavior(c echo.Context) error {
	report, err := h.analyticsService.Behavior(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetEmotionBreakdown godoc
// @Summary Performance grouped by emotion
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {array} metrics.GroupStat
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/emotions [get]
func (h *AnalyticsHandler) GetEmotionBreakdown(c echo.Context) error {
	stats, err := h.analyticsService.EmotionBreakdown(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetStrategyBreakdown godoc
// @Summary Performance grouped by strategy
// @Tags analytics
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {array} metrics.GroupStat
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/strategies [get]
func (h *AnalyticsHandler) GetStrategyBreakdown(c echo.Context) error {
	stats, err := h.analyticsService.StrategyBreakdown(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
