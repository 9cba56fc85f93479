package http

import (
	"net/http"
	"strconv"

	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TradeHandler handles HTTP requests for journaled trades.
type TradeHandler struct {
	tradeService service.TradeService
	logger       *logger.Logger
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService service.TradeService, logger *logger.Logger) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, logger: logger}
}

// RegisterRoutes registers the trade routes to the Echo group.
func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateTrade)
	g.GET("", h.GetAllTrades)
	g.GET("/:id", h.GetTradeByID)
	g.PUT("/:id", h.UpdateTrade)
	g.DELETE("/:id", h.DeleteTrade)
}

// CreateTrade godoc
// @Summary Journal a new trade
// @Description Create a trade; P&L is computed server-side when an exit price is present
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   trade  body    dto.CreateTradeRequest   true    "Trade to journal"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trades [post]
func (h *TradeHandler) CreateTrade(c echo.Context) error {
	var req dto.CreateTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.tradeService.Create(c.Request().Context(), userID(c), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetAllTrades godoc
// @Summary List the user's trades
// @Description Returns the full trade history, oldest entry first
// @Tags trades
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Success 200 {array} dto.TradeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trades [get]
func (h *TradeHandler) GetAllTrades(c echo.Context) error {
	trades, err := h.tradeService.GetAll(c.Request().Context(), userID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, trades)
}

// GetTradeByID godoc
// @Summary Get a trade by ID
// @Tags trades
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Trade ID"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trades/{id} [get]
func (h *TradeHandler) GetTradeByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid trade ID"})
	}

	trade, err := h.tradeService.GetByID(c.Request().Context(), userID(c), uint(id))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, trade)
}

// UpdateTrade godoc
// @Summary Update a trade
// @Description Replaces the trade and recomputes P&L from the submitted prices
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Trade ID"
// @Param   trade  body    dto.UpdateTradeRequest   true    "Updated trade"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trades/{id} [put]
func (h *TradeHandler) UpdateTrade(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid trade ID"})
	}

	var req dto.UpdateTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	trade, err := h.tradeService.Update(c.Request().Context(), userID(c), uint(id), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, trade)
}

// DeleteTrade godoc
// @Summary Delete a trade
// @Tags trades
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   id  path    int true    "Trade ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid trade ID"})
	}

	if err := h.tradeService.Delete(c.Request().Context(), userID(c), uint(id)); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
