package metrics

import "math"

// Risk-of-ruin status labels.
const (
	RuinStatusNoData   = "nodata"
	RuinStatusPerfect  = "perfect"
	RuinStatusSafe     = "safe"
	RuinStatusCritical = "critical"
)

// RuinReport summarizes the statistical probability of depleting trading
// capital given the observed win-rate/payoff edge.
type RuinReport struct {
	Probability float64 `json:"probability"`
	Status      string  `json:"status"`
	WinRate     float64 `json:"win_rate"`
	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"`
	PayoffRatio float64 `json:"payoff_ratio"`
	Edge        float64 `json:"edge"`
}

// RiskOfRuin estimates ruin probability with a gambler's-ruin power law over
// the configured number of capital units. Wins are trades with positive P&L;
// everything else counts as a loss. A non-positive edge is treated as certain
// ruin; a loss-free record with at least one win reports the "perfect" status
// with zero probability.
func (e *Engine) RiskOfRuin(trades []Trade) RuinReport {
	if len(trades) == 0 {
		return RuinReport{Status: RuinStatusNoData}
	}

	var wins, losses []Trade
	for _, t := range trades {
		if t.ProfitLoss > 0 {
			wins = append(wins, t)
		} else {
			losses = append(losses, t)
		}
	}

	winRate := float64(len(wins)) / float64(len(trades))
	avgWin := meanPnL(wins)
	avgLoss := math.Abs(meanPnL(losses))

	report := RuinReport{
		WinRate: winRate,
		AvgWin:  avgWin,
		AvgLoss: avgLoss,
	}

	if len(losses) == 0 {
		report.Status = RuinStatusPerfect
		return report
	}

	var payoff float64
	if avgLoss > 0 {
		payoff = avgWin / avgLoss
	}
	edge := winRate*payoff - (1 - winRate)

	report.PayoffRatio = payoff
	report.Edge = edge

	if edge <= 0 {
		report.Probability = 100
	} else {
		report.Probability = math.Pow((1-edge)/(1+edge), float64(e.cfg.CapitalUnits)) * 100
	}
	report.Probability = clamp(report.Probability, 0, 100)

	if report.Probability > 1 {
		report.Status = RuinStatusCritical
	} else {
		report.Status = RuinStatusSafe
	}
	return report
}

func meanPnL(trades []Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	var sum float64
	for _, t := range trades {
		sum += t.ProfitLoss
	}
	return sum / float64(len(trades))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
