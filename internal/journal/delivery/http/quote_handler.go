package http

import (
	"net/http"

	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QuoteHandler handles HTTP requests for real-time quotes.
type QuoteHandler struct {
	quoteRepo repository.QuoteRepository
	logger    *logger.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteRepo repository.QuoteRepository, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{quoteRepo: quoteRepo, logger: logger}
}

// RegisterRoutes registers the quote routes to the Echo group.
func (h *QuoteHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:symbol", h.GetQuote)
}

// GetQuote godoc
// @Summary Get a real-time quote
// @Description Fetches the latest quote for a symbol, served from a short-lived cache
// @Tags quotes
// @Produce  json
// @Param   symbol  path  string  true  "Ticker symbol"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{symbol} [get]
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	symbol := c.Param("symbol")
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid symbol"})
	}

	quote, err := h.quoteRepo.GetQuote(c.Request().Context(), symbol)
	if err != nil {
		h.logger.Error("Failed to fetch quote", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, quote)
}
