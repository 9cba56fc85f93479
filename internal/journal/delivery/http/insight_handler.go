package http

import (
	"net/http"
	"strconv"

	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// InsightHandler handles HTTP requests for AI insights.
type InsightHandler struct {
	insightService service.InsightService
	logger         *logger.Logger
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService service.InsightService, logger *logger.Logger) *InsightHandler {
	return &InsightHandler{insightService: insightService, logger: logger}
}

// RegisterRoutes registers the insight routes to the Echo group.
func (h *InsightHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.GenerateInsight)
	g.GET("", h.GetInsightHistory)
	g.GET("/models", h.ListModels)
}

// GenerateInsight godoc
// @Summary Generate an AI insight over the journal
// @Description Runs one agent persona against the user's trade history and watchlist
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   request  body    dto.GenerateInsightRequest   true    "Agent and optional model"
// @Success 201 {object} dto.InsightResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights [post]
func (h *InsightHandler) GenerateInsight(c echo.Context) error {
	var req dto.GenerateInsightRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.insightService.Generate(c.Request().Context(), userID(c), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetInsightHistory godoc
// @Summary List stored insights, newest first
// @Tags insights
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   limit  query  int  false  "Max results (default 20)"
// @Success 200 {array} dto.InsightResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights [get]
func (h *InsightHandler) GetInsightHistory(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
		}
		limit = parsed
	}

	insights, err := h.insightService.GetHistory(c.Request().Context(), userID(c), limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, insights)
}

// ListModels godoc
// @Summary List generation-capable AI models
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.ModelsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/models [get]
func (h *InsightHandler) ListModels(c echo.Context) error {
	models, err := h.insightService.ListModels(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models)
}
