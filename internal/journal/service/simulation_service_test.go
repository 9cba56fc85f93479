package service

import (
	"context"
	"testing"

	"golang-trade-journal/internal/journal/config"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulationService(t *testing.T) SimulationService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewSimulationService(&config.Config{
		Simulation: config.Simulation{
			MaxSimulations: 5000,
			MaxTrades:      500,
			Workers:        2,
		},
	}, log)
}

func TestSimulationRunShapesResponse(t *testing.T) {
	svc := newSimulationService(t)

	resp, err := svc.Run(context.Background(), &dto.SimulationRequest{
		StartingEquity: 10000,
		WinRate:        55,
		AvgWin:         200,
		AvgLoss:        100,
		RiskPerTrade:   1,
		NumTrades:      50,
		NumSimulations: 200,
		Seed:           42,
	})
	require.NoError(t, err)

	assert.Len(t, resp.ChartData.MedianCase, 51)
	assert.Len(t, resp.ChartData.BestCase, 51)
	assert.Len(t, resp.ChartData.WorstCase, 51)
	assert.InDelta(t, 10000, resp.Metrics.StartingEquity, 1e-9)
	assert.GreaterOrEqual(t, resp.Metrics.RiskOfRuin, 0.0)
	assert.LessOrEqual(t, resp.Metrics.RiskOfRuin, 100.0)
}

func TestSimulationRunDeterministicForSeed(t *testing.T) {
	svc := newSimulationService(t)

	req := dto.SimulationRequest{
		StartingEquity: 5000,
		WinRate:        45,
		AvgWin:         300,
		AvgLoss:        150,
		RiskPerTrade:   2,
		NumTrades:      30,
		NumSimulations: 100,
		Seed:           7,
	}

	first, err := svc.Run(context.Background(), &req)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), &req)
	require.NoError(t, err)

	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.ChartData, second.ChartData)
}

func TestSimulationRunRejectsOutOfBoundsRequests(t *testing.T) {
	svc := newSimulationService(t)

	cases := []struct {
		name string
		req  dto.SimulationRequest
	}{
		{"win rate over 100", dto.SimulationRequest{WinRate: 120}},
		{"negative win rate", dto.SimulationRequest{WinRate: -1}},
		{"risk over 100", dto.SimulationRequest{RiskPerTrade: 150}},
		{"negative avg win", dto.SimulationRequest{AvgWin: -10}},
		{"too many trades", dto.SimulationRequest{NumTrades: 501}},
		{"too many simulations", dto.SimulationRequest{NumSimulations: 5001}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), &tc.req)
			assert.Error(t, err)
		})
	}
}
