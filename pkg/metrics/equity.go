package metrics

import "time"

// EquityPoint is one step of the cumulative P&L curve.
type EquityPoint struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Equity float64   `json:"equity"`
}

// EquityCurve returns the running sum of profit/loss over time-sorted trades.
// The final point's equity equals the total P&L of the input.
func (e *Engine) EquityCurve(trades []Trade) []EquityPoint {
	sorted := sortedByDate(trades)
	points := make([]EquityPoint, 0, len(sorted))

	var running float64
	for _, t := range sorted {
		running += t.ProfitLoss
		points = append(points, EquityPoint{
			Date:   tradeTime(t),
			Label:  dateLabel(tradeTime(t)),
			Equity: running,
		})
	}
	return points
}
