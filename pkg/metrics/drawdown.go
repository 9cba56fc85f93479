package metrics

import "time"

// DrawdownPoint is one step of the underwater curve. DrawdownPct is zero or
// negative: percent below the running equity peak.
type DrawdownPoint struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	DrawdownPct float64   `json:"drawdown_pct"`
	Equity      float64   `json:"equity"`
}

// DrawdownReport is the underwater curve with its summary figures. Max and
// current drawdowns are reported as positive magnitudes; a current drawdown
// of zero means equity sits at its peak.
type DrawdownReport struct {
	Points             []DrawdownPoint `json:"points"`
	MaxDrawdownPct     float64         `json:"max_drawdown_pct"`
	CurrentDrawdownPct float64         `json:"current_drawdown_pct"`
}

// Drawdown computes the underwater equity curve over time-sorted trades.
// The peak starts at zero; while the peak is still zero and equity is
// negative the drawdown is pinned at -100%.
func (e *Engine) Drawdown(trades []Trade) DrawdownReport {
	sorted := sortedByDate(trades)
	points := make([]DrawdownPoint, 0, len(sorted))

	var running, peak, maxDD float64
	for _, t := range sorted {
		running += t.ProfitLoss
		if running > peak {
			peak = running
		}

		var dd float64
		switch {
		case peak > 0:
			dd = (running - peak) / peak * 100
		case running < 0:
			dd = -100
		}
		if dd > 0 {
			dd = 0
		}
		if dd < maxDD {
			maxDD = dd
		}

		points = append(points, DrawdownPoint{
			Date:        tradeTime(t),
			Label:       dateLabel(tradeTime(t)),
			DrawdownPct: dd,
			Equity:      running,
		})
	}

	var current float64
	if len(points) > 0 {
		current = points[len(points)-1].DrawdownPct
	}

	return DrawdownReport{
		Points:             points,
		MaxDrawdownPct:     -maxDD,
		CurrentDrawdownPct: -current,
	}
}
