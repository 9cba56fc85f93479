package service

import (
	"context"
	"fmt"

	"golang-trade-journal/internal/journal/config"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/montecarlo"
)

// SimulationService validates Monte Carlo requests against the configured
// bounds and runs the batch.
type SimulationService interface {
	Run(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationResponse, error)
}

// NewSimulationService creates a new simulation service.
func NewSimulationService(cfg *config.Config, log *logger.Logger) SimulationService {
	return &simulationService{
		cfg:    cfg,
		logger: log,
	}
}

type simulationService struct {
	cfg    *config.Config
	logger *logger.Logger
}

func (s *simulationService) Run(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := montecarlo.Run(montecarlo.Params{
		StartingEquity:  req.StartingEquity,
		WinRatePct:      req.WinRate,
		AvgWin:          req.AvgWin,
		AvgLoss:         req.AvgLoss,
		RiskPerTradePct: req.RiskPerTrade,
		NumTrades:       req.NumTrades,
		NumSimulations:  req.NumSimulations,
		Seed:            req.Seed,
		Workers:         s.cfg.Simulation.Workers,
	})

	s.logger.Debug("Monte Carlo batch completed",
		logger.IntField("simulations", req.NumSimulations),
		logger.IntField("trades", req.NumTrades),
	)

	return &dto.SimulationResponse{
		ChartData: dto.SimulationChartData{
			BestCase:   result.ChartData.BestCase,
			MedianCase: result.ChartData.MedianCase,
			WorstCase:  result.ChartData.WorstCase,
		},
		Metrics: dto.SimulationMetrics{
			RiskOfRuin:     result.Metrics.RiskOfRuinPct,
			MedianEquity:   result.Metrics.MedianEquity,
			MinEquity:      result.Metrics.MinEquity,
			MaxEquity:      result.Metrics.MaxEquity,
			StartingEquity: result.Metrics.StartingEquity,
		},
	}, nil
}

func (s *simulationService) validate(req *dto.SimulationRequest) error {
	if req.WinRate < 0 || req.WinRate > 100 {
		return fmt.Errorf("win_rate must be between 0 and 100")
	}
	if req.RiskPerTrade < 0 || req.RiskPerTrade > 100 {
		return fmt.Errorf("risk_per_trade must be between 0 and 100")
	}
	if req.AvgWin < 0 || req.AvgLoss < 0 {
		return fmt.Errorf("avg_win and avg_loss cannot be negative")
	}
	if req.NumTrades > s.cfg.Simulation.MaxTrades {
		return fmt.Errorf("num_trades cannot exceed %d", s.cfg.Simulation.MaxTrades)
	}
	if req.NumSimulations > s.cfg.Simulation.MaxSimulations {
		return fmt.Errorf("num_simulations cannot exceed %d", s.cfg.Simulation.MaxSimulations)
	}
	return nil
}
