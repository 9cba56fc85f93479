package metrics

import "math"

// SQN rating bands.
const (
	RatingInsufficient = "insufficient"
	RatingHard         = "hard"
	RatingAverage      = "average"
	RatingHolyGrail    = "holy_grail"
)

// QualityReport carries the system-viability scores: expectancy in currency
// per trade, the System Quality Number over R-multiples, and the Sortino
// ratio of annualized return against downside deviation.
type QualityReport struct {
	Expectancy float64 `json:"expectancy"`
	SQN        float64 `json:"sqn"`
	AvgR       float64 `json:"avg_r"`
	Sortino    float64 `json:"sortino"`
	Rating     string  `json:"rating"`
}

// SystemQuality computes expectancy, SQN and Sortino. Fewer than two trades
// yields zero scores with the "insufficient" rating. The R-multiple
// denominator falls back from a trade's planned risk to the average loss and
// finally to 1, so the score stays defined for journals without risk data.
func (e *Engine) SystemQuality(trades []Trade) QualityReport {
	if len(trades) < 2 {
		return QualityReport{Rating: RatingInsufficient}
	}

	var wins, losses []Trade
	for _, t := range trades {
		switch {
		case t.ProfitLoss > 0:
			wins = append(wins, t)
		case t.ProfitLoss < 0:
			losses = append(losses, t)
		}
	}

	winRate := float64(len(wins)) / float64(len(trades))
	avgWin := meanPnL(wins)
	avgLoss := math.Abs(meanPnL(losses))

	expectancy := winRate*avgWin - (1-winRate)*avgLoss

	// R-multiples: P&L over planned risk, falling back to the average loss.
	rs := make([]float64, len(trades))
	for i, t := range trades {
		denom := 1.0
		switch {
		case t.InitialRisk != nil && *t.InitialRisk > 0:
			denom = *t.InitialRisk
		case avgLoss > 0:
			denom = avgLoss
		}
		rs[i] = t.ProfitLoss / denom
	}

	var avgR float64
	for _, r := range rs {
		avgR += r
	}
	avgR /= float64(len(rs))

	var variance float64
	for _, r := range rs {
		variance += (r - avgR) * (r - avgR)
	}
	variance /= float64(len(rs))
	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		stdDev = 1
	}

	sqn := avgR / stdDev * math.Sqrt(math.Min(float64(len(trades)), 100))

	report := QualityReport{
		Expectancy: expectancy,
		SQN:        sqn,
		AvgR:       avgR,
		Sortino:    e.sortino(trades, losses),
	}

	switch {
	case sqn >= 3:
		report.Rating = RatingHolyGrail
	case sqn >= 1.6:
		report.Rating = RatingAverage
	default:
		report.Rating = RatingHard
	}
	return report
}

// sortino annualizes total P&L over the configured capital base and divides
// the excess over the risk-free rate by the downside deviation of losing
// trades' percentage returns.
func (e *Engine) sortino(trades, losses []Trade) float64 {
	sorted := sortedByDate(trades)

	var totalReturn float64
	for _, t := range trades {
		totalReturn += t.ProfitLoss
	}

	daySpan := tradeTime(sorted[len(sorted)-1]).Sub(tradeTime(sorted[0])).Hours() / 24
	years := math.Abs(daySpan) / 365
	if years == 0 {
		years = 1
	}

	base := e.cfg.CapitalBase
	ending := base + totalReturn
	var cagr float64
	if ending <= 0 {
		// Account wiped out; growth floor rather than a NaN from a
		// fractional power of a negative number.
		cagr = -100
	} else {
		cagr = (math.Pow(ending/base, 1/years) - 1) * 100
	}

	downsideVariance := 1.0
	if len(losses) > 0 {
		downsideVariance = 0
		for _, t := range losses {
			downsideVariance += t.ProfitLossPct * t.ProfitLossPct
		}
		downsideVariance /= float64(len(losses))
	}
	downsideDev := math.Sqrt(downsideVariance)
	if downsideDev == 0 {
		downsideDev = 1
	}

	return (cagr - e.cfg.RiskFreeRatePct) / downsideDev
}
