package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() Params {
	return Params{
		StartingEquity:  10000,
		WinRatePct:      55,
		AvgWin:          200,
		AvgLoss:         100,
		RiskPerTradePct: 2,
		NumTrades:       50,
		NumSimulations:  500,
		Seed:            1234,
	}
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	a := Run(baseParams())
	b := Run(baseParams())
	assert.Equal(t, a, b)
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	serial := baseParams()
	serial.Workers = 1
	parallel := baseParams()
	parallel.Workers = 8

	assert.Equal(t, Run(serial), Run(parallel))
}

func TestRunCertainWinner(t *testing.T) {
	p := baseParams()
	p.WinRatePct = 100
	p.NumTrades = 10

	result := Run(p)
	require.Len(t, result.ChartData.MedianCase, 11)

	// Every path is strictly increasing, so the percentile bands are too.
	for i := 1; i < len(result.ChartData.MedianCase); i++ {
		assert.Greater(t, result.ChartData.MedianCase[i], result.ChartData.MedianCase[i-1])
		assert.Greater(t, result.ChartData.WorstCase[i], result.ChartData.WorstCase[i-1])
		assert.Greater(t, result.ChartData.BestCase[i], result.ChartData.BestCase[i-1])
	}
	assert.Zero(t, result.Metrics.RiskOfRuinPct)
}

func TestRunCertainLoser(t *testing.T) {
	p := baseParams()
	p.WinRatePct = 0
	p.NumTrades = 40
	p.RiskPerTradePct = 5

	result := Run(p)

	for i := 1; i < len(result.ChartData.MedianCase); i++ {
		assert.Less(t, result.ChartData.MedianCase[i], result.ChartData.MedianCase[i-1])
	}

	// All paths are identical: equity * 0.95^40, far below the ruin line.
	assert.InDelta(t, 100, result.Metrics.RiskOfRuinPct, 1e-9)
	assert.InDelta(t, result.Metrics.MinEquity, result.Metrics.MaxEquity, 0.011)
}

func TestRunZeroTradesIsFlat(t *testing.T) {
	p := baseParams()
	p.NumTrades = 0

	result := Run(p)
	require.Len(t, result.ChartData.MedianCase, 1)
	assert.InDelta(t, p.StartingEquity, result.ChartData.MedianCase[0], 1e-9)
	assert.InDelta(t, p.StartingEquity, result.Metrics.MedianEquity, 1e-9)
	assert.Zero(t, result.Metrics.RiskOfRuinPct)
}

func TestRunFallsBackOnInvalidEquity(t *testing.T) {
	p := baseParams()
	p.StartingEquity = -5

	result := Run(p)
	assert.InDelta(t, 1000, result.Metrics.StartingEquity, 1e-9)
}

func TestRunDefaultsSimulationCount(t *testing.T) {
	p := baseParams()
	p.NumSimulations = 0
	p.NumTrades = 5

	result := Run(p)
	require.Len(t, result.ChartData.BestCase, 6)
}

func TestPercentileBandsOrdered(t *testing.T) {
	result := Run(baseParams())
	for i := range result.ChartData.MedianCase {
		assert.LessOrEqual(t, result.ChartData.WorstCase[i], result.ChartData.MedianCase[i])
		assert.LessOrEqual(t, result.ChartData.MedianCase[i], result.ChartData.BestCase[i])
	}
}

func TestRuinPercentInRange(t *testing.T) {
	p := baseParams()
	p.WinRatePct = 30
	p.RiskPerTradePct = 10

	result := Run(p)
	assert.GreaterOrEqual(t, result.Metrics.RiskOfRuinPct, 0.0)
	assert.LessOrEqual(t, result.Metrics.RiskOfRuinPct, 100.0)
}

func TestRewardMultiple(t *testing.T) {
	assert.InDelta(t, 2, rewardMultiple(200, 100), 1e-9)
	assert.InDelta(t, 2, rewardMultiple(-200, 100), 1e-9)
	assert.InDelta(t, 1, rewardMultiple(50, 0), 1e-9)
	assert.Zero(t, rewardMultiple(0, 0))
}

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	assert.InDelta(t, 10, percentile(sorted, 0), 1e-9)
	assert.InDelta(t, 40, percentile(sorted, 100), 1e-9)
	assert.InDelta(t, 25, percentile(sorted, 50), 1e-9)
	assert.InDelta(t, 13, percentile(sorted, 10), 1e-9)
}
