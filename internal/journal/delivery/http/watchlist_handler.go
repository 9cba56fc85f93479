package http

import (
	"net/http"
	"strconv"

	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for watchlist plans.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreatePlan)
	g.GET("", h.GetAllPlans)
	g.GET("/:id", h.GetPlanByID)
	g.PUT("/:id", h.UpdatePlan)
	g.DELETE("/:id", h.DeletePlan)
}

// CreatePlan godoc
// @Summary Stage a new trade plan
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   plan  body    dto.CreatePlanRequest   true    "Plan to stage"
// @Success 201 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist-plans [post]
func (h *WatchlistHandler) CreatePlan(c echo.Context) error {
	var req dto.CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.watchlistService.Create(c.Request().Context(), userID(c), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetAllPlans godoc
// @Summary List the user's watchlist plans
// @Tags watchlist
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {array} dto.PlanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist-plans [get]
func (h *WatchlistHandler) GetAllPlans(c echo.Context) error {
	plans, err := h.watchlistService.GetAll(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// GetPlanByID godoc
// @Summary Get a watchlist plan by ID
// @Tags watchlist
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /watchlist-plans/{id} [get]
func (h *WatchlistHandler) GetPlanByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid plan ID"})
	}

	plan, err := h.watchlistService.GetByID(c.Request().Context(), userID(c), uint(id))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// UpdatePlan godoc
// @Summary Update a watchlist plan
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Plan ID"
// @Param   plan  body    dto.UpdatePlanRequest   true    "Updated plan"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /watchlist-plans/{id} [put]
func (h *WatchlistHandler) UpdatePlan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid plan ID"})
	}

	var req dto.UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	plan, err := h.watchlistService.Update(c.Request().Context(), userID(c), uint(id), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary Delete a watchlist plan
// @Tags watchlist
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Plan ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /watchlist-plans/{id} [delete]
func (h *WatchlistHandler) DeletePlan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid plan ID"})
	}

	if err := h.watchlistService.Delete(c.Request().Context(), userID(c), uint(id)); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
