package http

import (
	"net/http"

	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/service"
	"golang-trade-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SimulationHandler handles HTTP requests for Monte Carlo simulations.
type SimulationHandler struct {
	simulationService service.SimulationService
	logger            *logger.Logger
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService service.SimulationService, logger *logger.Logger) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService, logger: logger}
}

// RegisterRoutes registers the simulation routes to the Echo group.
func (h *SimulationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.RunSimulation)
}

// RunSimulation godoc
// @Summary Run a Monte Carlo equity simulation
// @Description Simulates compounded equity paths for the given system parameters
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   X-User-ID  header  string  true  "Calling user"
// @Param   params  body    dto.SimulationRequest   true    "Simulation parameters"
// @Success 200 {object} dto.SimulationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /simulations [post]
func (h *SimulationHandler) RunSimulation(c echo.Context) error {
	var req dto.SimulationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.simulationService.Run(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
