package metrics

import "math"

// Emotions that classify a trade as a mistake regardless of its flag.
var mistakeEmotions = map[string]bool{
	"impulsive": true,
	"greedy":    true,
	"fearful":   true,
}

// BehaviorReport compares actual results against the hypothetical record
// with all mistake trades removed. DisciplineScore is the share of trades
// that followed the plan, 0-100, and 100 for an empty journal.
type BehaviorReport struct {
	ActualPnL       float64 `json:"actual_pnl"`
	MistakePnL      float64 `json:"mistake_pnl"`
	TheoreticalPnL  float64 `json:"theoretical_pnl"`
	CostOfMistakes  float64 `json:"cost_of_mistakes"`
	PlanTrades      int     `json:"plan_trades"`
	MistakeTrades   int     `json:"mistake_trades"`
	DisciplineScore float64 `json:"discipline_score"`
}

// IsMistakeTrade reports whether a trade counts against discipline: flagged
// explicitly, taken on a tilt emotion, or rated a poor setup.
func IsMistakeTrade(t Trade) bool {
	return t.IsMistake || mistakeEmotions[t.Emotion] || t.SetupQuality == "poor"
}

// Behavior partitions trades into plan and mistake trades and prices the
// mistakes.
func (e *Engine) Behavior(trades []Trade) BehaviorReport {
	report := BehaviorReport{DisciplineScore: 100}

	for _, t := range trades {
		report.ActualPnL += t.ProfitLoss
		if IsMistakeTrade(t) {
			report.MistakeTrades++
			report.MistakePnL += t.ProfitLoss
		} else {
			report.PlanTrades++
		}
	}

	report.TheoreticalPnL = report.ActualPnL - report.MistakePnL
	report.CostOfMistakes = math.Abs(report.TheoreticalPnL - report.ActualPnL)

	if total := len(trades); total > 0 {
		report.DisciplineScore = float64(report.PlanTrades) / float64(total) * 100
	}
	return report
}
