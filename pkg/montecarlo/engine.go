// Package montecarlo simulates equity paths for a trading system described
// by its win rate, average win/loss and per-trade risk. Outcomes compound:
// each trade risks a fixed percentage of current equity and pays off at the
// system's reward-to-risk multiple. Runs are deterministic for a fixed seed
// and independent per simulation, so they fan out across workers.
package montecarlo

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"
)

const (
	defaultSimulations    = 1000
	defaultTrades         = 50
	fallbackEquity        = 1000
	ruinThresholdFraction = 0.5
)

// Params configures a simulation batch.
type Params struct {
	StartingEquity  float64 `json:"starting_equity"`
	WinRatePct      float64 `json:"win_rate"`
	AvgWin          float64 `json:"avg_win"`
	AvgLoss         float64 `json:"avg_loss"`
	RiskPerTradePct float64 `json:"risk_per_trade"`
	NumTrades       int     `json:"num_trades"`
	NumSimulations  int     `json:"num_simulations"`
	// Seed fixes the random sequence; zero seeds from the clock.
	Seed int64 `json:"seed"`
	// Workers bounds the parallel fan-out; zero uses GOMAXPROCS.
	Workers int `json:"-"`
}

// ChartData holds the percentile cone per trade index: 10th, 50th and 90th
// percentiles across all simulated paths.
type ChartData struct {
	WorstCase  []float64 `json:"worst_case"`
	MedianCase []float64 `json:"median_case"`
	BestCase   []float64 `json:"best_case"`
}

// Metrics summarizes the distribution of final equities. RiskOfRuinPct is
// the share of simulations finishing below half the starting equity.
type Metrics struct {
	RiskOfRuinPct  float64 `json:"risk_of_ruin"`
	MedianEquity   float64 `json:"median_equity"`
	MinEquity      float64 `json:"min_equity"`
	MaxEquity      float64 `json:"max_equity"`
	StartingEquity float64 `json:"starting_equity"`
}

// Result is a completed simulation batch.
type Result struct {
	ChartData ChartData `json:"chart_data"`
	Metrics   Metrics   `json:"metrics"`
}

// Run executes the batch described by p. Degenerate parameters are well
// defined: a zero trade count yields flat curves, win rates of 0 or 100
// produce strictly monotone paths, and non-positive starting equity falls
// back to a nominal account.
func Run(p Params) Result {
	if p.StartingEquity <= 0 {
		p.StartingEquity = fallbackEquity
	}
	if p.NumSimulations <= 0 {
		p.NumSimulations = defaultSimulations
	}
	if p.NumTrades < 0 {
		p.NumTrades = defaultTrades
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > p.NumSimulations {
		workers = p.NumSimulations
	}

	winProb := p.WinRatePct / 100
	riskFraction := p.RiskPerTradePct / 100
	rMultiple := rewardMultiple(p.AvgWin, p.AvgLoss)

	curves := make([][]float64, p.NumSimulations)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < p.NumSimulations; i += workers {
				// Per-simulation source keyed off the base seed keeps runs
				// reproducible regardless of worker scheduling.
				rng := rand.New(rand.NewSource(p.Seed + int64(i)))
				curves[i] = simulatePath(rng, p.StartingEquity, winProb, riskFraction, rMultiple, p.NumTrades)
			}
		}(w)
	}
	wg.Wait()

	return aggregate(curves, p.StartingEquity, p.NumTrades)
}

// rewardMultiple is the system's R: reward per unit of risk. A zero average
// loss degenerates to 0 (no edge data) or 1 (wins only).
func rewardMultiple(avgWin, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgWin == 0 {
			return 0
		}
		return 1
	}
	return math.Abs(avgWin / avgLoss)
}

func simulatePath(rng *rand.Rand, start, winProb, riskFraction, rMultiple float64, numTrades int) []float64 {
	curve := make([]float64, numTrades+1)
	curve[0] = start

	equity := start
	for t := 0; t < numTrades; t++ {
		risk := equity * riskFraction
		if rng.Float64() < winProb {
			equity += risk * rMultiple
		} else {
			equity -= risk
		}
		if equity < 0 {
			equity = 0
		}
		curve[t+1] = equity
	}
	return curve
}

func aggregate(curves [][]float64, start float64, numTrades int) Result {
	numSims := len(curves)

	chart := ChartData{
		WorstCase:  make([]float64, numTrades+1),
		MedianCase: make([]float64, numTrades+1),
		BestCase:   make([]float64, numTrades+1),
	}

	column := make([]float64, numSims)
	for step := 0; step <= numTrades; step++ {
		for i, curve := range curves {
			column[i] = curve[step]
		}
		sort.Float64s(column)
		chart.WorstCase[step] = round2(percentile(column, 10))
		chart.MedianCase[step] = round2(percentile(column, 50))
		chart.BestCase[step] = round2(percentile(column, 90))
	}

	finals := make([]float64, numSims)
	ruined := 0
	for i, curve := range curves {
		finals[i] = curve[len(curve)-1]
		if finals[i] < start*ruinThresholdFraction {
			ruined++
		}
	}
	sort.Float64s(finals)

	return Result{
		ChartData: chart,
		Metrics: Metrics{
			RiskOfRuinPct:  round2(float64(ruined) / float64(numSims) * 100),
			MedianEquity:   round2(percentile(finals, 50)),
			MinEquity:      round2(finals[0]),
			MaxEquity:      round2(finals[len(finals)-1]),
			StartingEquity: start,
		},
	}
}

// percentile computes the p-th percentile of sorted values with linear
// interpolation between ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lower := int(math.Floor(rank))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lower)
	return sorted[lower] + (sorted[lower+1]-sorted[lower])*frac
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
