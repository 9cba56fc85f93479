package metrics

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func closedTrade(day int, pnl float64) Trade {
	exit := testBase.AddDate(0, 0, day)
	return Trade{
		Symbol:     "AAPL",
		Direction:  DirectionLong,
		EntryDate:  exit.Add(-2 * time.Hour),
		ExitDate:   &exit,
		ProfitLoss: pnl,
	}
}

func TestEquityCurveSumIdentity(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 100),
		closedTrade(2, -30),
		closedTrade(3, 45.5),
		closedTrade(4, -10.5),
	}

	curve := engine.EquityCurve(trades)
	require.Len(t, curve, 4)
	assert.InDelta(t, 105, curve[len(curve)-1].Equity, 1e-9)
	assert.Equal(t, "Mar 2", curve[0].Label)
}

func TestEquityCurveOrderIndependent(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 10),
		closedTrade(2, -5),
		closedTrade(3, 20),
		closedTrade(4, -15),
		closedTrade(5, 7),
	}

	want := engine.EquityCurve(trades)

	shuffled := make([]Trade, len(trades))
	copy(shuffled, trades)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assert.Equal(t, want, engine.EquityCurve(shuffled))
}

func TestEquityCurveEmpty(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	assert.Empty(t, engine.EquityCurve(nil))
}

func TestDrawdownScenarioA(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 100),
		closedTrade(2, -50),
	}

	report := engine.Drawdown(trades)
	require.Len(t, report.Points, 2)
	assert.InDelta(t, 0, report.Points[0].DrawdownPct, 1e-9)
	assert.InDelta(t, -50, report.Points[1].DrawdownPct, 1e-9)
	assert.InDelta(t, 50, report.MaxDrawdownPct, 1e-9)
	assert.InDelta(t, 50, report.CurrentDrawdownPct, 1e-9)
}

func TestDrawdownAtPeakIsZero(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 100),
		closedTrade(2, -50),
		closedTrade(3, 80),
	}

	report := engine.Drawdown(trades)
	assert.InDelta(t, 0, report.CurrentDrawdownPct, 1e-9)
	assert.InDelta(t, 50, report.MaxDrawdownPct, 1e-9)
}

func TestDrawdownNegativeFromStart(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{closedTrade(1, -40)}

	report := engine.Drawdown(trades)
	require.Len(t, report.Points, 1)
	assert.InDelta(t, -100, report.Points[0].DrawdownPct, 1e-9)
	assert.InDelta(t, 100, report.MaxDrawdownPct, 1e-9)
}

func TestDrawdownNeverPositive(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	rng := rand.New(rand.NewSource(7))
	trades := make([]Trade, 50)
	for i := range trades {
		trades[i] = closedTrade(i, rng.Float64()*200-100)
	}

	report := engine.Drawdown(trades)
	for _, p := range report.Points {
		assert.LessOrEqual(t, p.DrawdownPct, 0.0)
	}
	assert.GreaterOrEqual(t, report.MaxDrawdownPct, 0.0)
	assert.GreaterOrEqual(t, report.CurrentDrawdownPct, 0.0)
}

func TestRiskOfRuinNoData(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.RiskOfRuin(nil)
	assert.Equal(t, RuinStatusNoData, report.Status)
	assert.Zero(t, report.Probability)
}

func TestRiskOfRuinPerfectRecord(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := make([]Trade, 10)
	for i := range trades {
		trades[i] = closedTrade(i, 10)
	}

	report := engine.RiskOfRuin(trades)
	assert.Equal(t, RuinStatusPerfect, report.Status)
	assert.Zero(t, report.Probability)
	assert.InDelta(t, 1.0, report.WinRate, 1e-9)
}

func TestRiskOfRuinNegativeEdgeIsCertain(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 10),
		closedTrade(2, -100),
		closedTrade(3, -100),
		closedTrade(4, -100),
	}

	report := engine.RiskOfRuin(trades)
	assert.Equal(t, RuinStatusCritical, report.Status)
	assert.InDelta(t, 100, report.Probability, 1e-9)
}

func TestRiskOfRuinPositiveEdge(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	// 60% win rate, payoff 2:1 -> edge 0.8, tiny ruin probability.
	var trades []Trade
	for i := 0; i < 6; i++ {
		trades = append(trades, closedTrade(i, 200))
	}
	for i := 6; i < 10; i++ {
		trades = append(trades, closedTrade(i, -100))
	}

	report := engine.RiskOfRuin(trades)
	assert.Equal(t, RuinStatusSafe, report.Status)
	assert.Greater(t, report.Edge, 0.0)
	assert.GreaterOrEqual(t, report.Probability, 0.0)
	assert.LessOrEqual(t, report.Probability, 100.0)
	assert.LessOrEqual(t, report.Probability, 1.0)
}

func TestRiskOfRuinBreakEvenCountsAsLoss(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 10),
		closedTrade(2, 0),
	}

	report := engine.RiskOfRuin(trades)
	// A break-even trade is a loss with zero magnitude: payoff collapses and
	// the edge goes non-positive.
	assert.Equal(t, RuinStatusCritical, report.Status)
	assert.InDelta(t, 100, report.Probability, 1e-9)
}

func TestSystemQualityInsufficientData(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.SystemQuality([]Trade{closedTrade(1, 50)})
	assert.Equal(t, RatingInsufficient, report.Rating)
	assert.Zero(t, report.SQN)
	assert.Zero(t, report.Expectancy)
}

func TestSystemQualityRMultiples(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	// Both trades exit at exactly 3R against their planned risk.
	trades := []Trade{
		closedTrade(1, 150),
		closedTrade(2, 75),
	}
	trades[0].InitialRisk = ptr(50.0)
	trades[1].InitialRisk = ptr(25.0)

	report := engine.SystemQuality(trades)
	assert.InDelta(t, 3.0, report.AvgR, 1e-9)
	// Zero variance floors the std dev at 1.
	assert.InDelta(t, 3.0*math.Sqrt(2), report.SQN, 1e-9)
	assert.Equal(t, RatingHolyGrail, report.Rating)
}

func TestSystemQualityExpectancy(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	// 50% at +100, 50% at -50 -> expectancy 25 per trade.
	trades := []Trade{
		closedTrade(1, 100),
		closedTrade(2, -50),
	}
	trades[1].ProfitLossPct = -5

	report := engine.SystemQuality(trades)
	assert.InDelta(t, 25, report.Expectancy, 1e-9)
}

func TestSystemQualitySortinoDefined(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 500),
		closedTrade(30, -200),
		closedTrade(60, 300),
	}
	trades[1].ProfitLossPct = -4

	report := engine.SystemQuality(trades)
	assert.False(t, math.IsNaN(report.Sortino))
	assert.False(t, math.IsInf(report.Sortino, 0))
}

func TestSystemQualityAllLosersNoNaN(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, -5000),
		closedTrade(2, -6000),
	}
	trades[0].ProfitLossPct = -50
	trades[1].ProfitLossPct = -60

	report := engine.SystemQuality(trades)
	assert.False(t, math.IsNaN(report.Sortino))
	assert.Equal(t, RatingHard, report.Rating)
}

func TestExcursionEstimates(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{
		closedTrade(1, 100),
		closedTrade(2, -50),
	}

	report := engine.Excursion(trades)
	require.Len(t, report.Points, 2)
	assert.Equal(t, 2, report.EstimatedCount)

	winner, loser := report.Points[0], report.Points[1]
	assert.InDelta(t, 130, winner.MFE, 1e-9) // 100 * 1.3
	assert.InDelta(t, 30, winner.MAE, 1e-9)  // |-100*0.3|
	assert.InDelta(t, 25, loser.MFE, 1e-9)   // |-50|*0.5
	assert.InDelta(t, 60, loser.MAE, 1e-9)   // |-50*1.2|

	// 100 realized of 130 available.
	assert.InDelta(t, 100.0/130.0*100, report.ExitEfficiencyPct, 1e-9)
}

func TestExcursionEfficiencyCapped(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trade := closedTrade(1, 100)
	trade.MFE = ptr(40.0) // exited above the recorded peak
	trade.MAE = ptr(-10.0)

	report := engine.Excursion([]Trade{trade})
	assert.InDelta(t, 100, report.ExitEfficiencyPct, 1e-9)
	assert.Zero(t, report.EstimatedCount)
}

func TestExcursionEmpty(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.Excursion(nil)
	assert.Zero(t, report.ExitEfficiencyPct)
	assert.Zero(t, report.AvgMAE)
	assert.Zero(t, report.AvgMFE)
}

func TestBehaviorPartition(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	flagged := closedTrade(1, -80)
	flagged.IsMistake = true
	tilt := closedTrade(2, 40)
	tilt.Emotion = "greedy"
	sloppy := closedTrade(3, -20)
	sloppy.SetupQuality = "poor"
	clean := closedTrade(4, 100)
	clean.Emotion = "disciplined"

	report := engine.Behavior([]Trade{flagged, tilt, sloppy, clean})
	assert.Equal(t, 3, report.MistakeTrades)
	assert.Equal(t, 1, report.PlanTrades)
	assert.InDelta(t, 40, report.ActualPnL, 1e-9)
	assert.InDelta(t, -60, report.MistakePnL, 1e-9)
	assert.InDelta(t, 100, report.TheoreticalPnL, 1e-9)
	assert.InDelta(t, 60, report.CostOfMistakes, 1e-9)
	assert.InDelta(t, 25, report.DisciplineScore, 1e-9)
}

func TestBehaviorDisciplineBounds(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assert.InDelta(t, 100, engine.Behavior(nil).DisciplineScore, 1e-9)

	rng := rand.New(rand.NewSource(11))
	trades := make([]Trade, 40)
	for i := range trades {
		trades[i] = closedTrade(i, rng.Float64()*100-50)
		if rng.Intn(2) == 0 {
			trades[i].IsMistake = true
		}
	}
	score := engine.Behavior(trades).DisciplineScore
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestBehaviorIgnoresPnLForDiscipline(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	// Scenario B: ten winners; discipline depends only on mistake flags.
	trades := make([]Trade, 10)
	for i := range trades {
		trades[i] = closedTrade(i, 10)
	}
	trades[0].IsMistake = true

	report := engine.Behavior(trades)
	assert.InDelta(t, 90, report.DisciplineScore, 1e-9)
}

func TestSummary(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	now := testBase.AddDate(0, 0, 90)

	old := closedTrade(1, 100) // outside both windows
	prev := closedTrade(40, -50)
	recent := closedTrade(75, 200)
	recent2 := closedTrade(80, -20)

	report := engine.Summary([]Trade{old, prev, recent, recent2}, now)
	assert.Equal(t, 4, report.TradeCount)
	assert.InDelta(t, 230, report.TotalPnL, 1e-9)
	assert.InDelta(t, 50, report.WinRatePct, 1e-9)
	assert.InDelta(t, 300.0/70.0, report.ProfitFactor, 1e-9)
	assert.Equal(t, 1, report.TradeCountChange)
}

func TestSummaryEmpty(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.Summary(nil, testBase)
	assert.Zero(t, report.TotalPnL)
	assert.Zero(t, report.WinRatePct)
	assert.Zero(t, report.ProfitFactor)
}

func TestSummaryProfitFactorNoLosses(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	trades := []Trade{closedTrade(1, 100), closedTrade(2, 50)}

	report := engine.Summary(trades, testBase.AddDate(1, 0, 0))
	// Gross loss of zero reports gross profit, not infinity.
	assert.InDelta(t, 150, report.ProfitFactor, 1e-9)
}

func TestEmotionBreakdown(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	a := closedTrade(1, 100)
	a.Emotion = "confident"
	b := closedTrade(2, -40)
	b.Emotion = "confident"
	c := closedTrade(3, 25)

	groups := engine.EmotionBreakdown([]Trade{a, b, c})
	require.Len(t, groups, 2)
	assert.Equal(t, "confident", groups[0].Label)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 60, groups[0].TotalPnL, 1e-9)
	assert.InDelta(t, 50, groups[0].WinRatePct, 1e-9)
	assert.Equal(t, "neutral", groups[1].Label)
}

func TestStrategyBreakdownUnspecified(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	groups := engine.StrategyBreakdown([]Trade{closedTrade(1, 10)})
	require.Len(t, groups, 1)
	assert.Equal(t, "Unspecified", groups[0].Label)
}

func TestPlanRiskReward(t *testing.T) {
	rr := PlanRiskReward(100, 95, 115)
	assert.InDelta(t, 5, rr.Risk, 1e-9)
	assert.InDelta(t, 15, rr.Reward, 1e-9)
	assert.InDelta(t, 3, rr.Ratio, 1e-9)
}

func TestPlanRiskRewardDegenerate(t *testing.T) {
	rr := PlanRiskReward(100, 100, 120)
	assert.Zero(t, rr.Ratio)
}

func TestOpenTradeOrderedByEntryDate(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	open := Trade{
		Symbol:    "TSLA",
		Direction: DirectionLong,
		EntryDate: testBase.AddDate(0, 0, 5),
	}
	closed := closedTrade(1, 100)

	curve := engine.EquityCurve([]Trade{open, closed})
	require.Len(t, curve, 2)
	assert.InDelta(t, 100, curve[0].Equity, 1e-9)
	assert.InDelta(t, 100, curve[1].Equity, 1e-9)
}

func ptr[T any](v T) *T { return &v }
