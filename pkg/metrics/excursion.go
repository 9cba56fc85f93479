package metrics

import "math"

// ExcursionPoint is one trade's realized P&L against its maximum favorable
// and adverse excursions, both reported as positive magnitudes. Estimated is
// true when the trade carried no recorded excursions and heuristics filled
// them in.
type ExcursionPoint struct {
	Symbol    string  `json:"symbol"`
	PnL       float64 `json:"pnl"`
	MFE       float64 `json:"mfe"`
	MAE       float64 `json:"mae"`
	IsWin     bool    `json:"is_win"`
	Estimated bool    `json:"estimated"`
}

// ExcursionReport summarizes how much of the available move each trade
// captured. ExitEfficiencyPct is realized winner P&L over winner MFE,
// capped at 100.
type ExcursionReport struct {
	Points            []ExcursionPoint `json:"points"`
	ExitEfficiencyPct float64          `json:"exit_efficiency_pct"`
	AvgMAE            float64          `json:"avg_mae"`
	AvgMFE            float64          `json:"avg_mfe"`
	EstimatedCount    int              `json:"estimated_count"`
}

// Excursion computes MAE/MFE capture statistics. Trades without recorded
// excursions are estimated from realized P&L: winners are assumed to have
// left 30% of the move on the table, losers to have seen half their loss as
// open profit at some point.
func (e *Engine) Excursion(trades []Trade) ExcursionReport {
	report := ExcursionReport{Points: make([]ExcursionPoint, 0, len(trades))}

	for _, t := range trades {
		pnl := t.ProfitLoss

		var mfe, mae float64
		estimated := t.MFE == nil && t.MAE == nil
		if t.MFE != nil {
			mfe = *t.MFE
		} else if pnl > 0 {
			mfe = pnl * 1.3
		} else {
			mfe = math.Abs(pnl) * 0.5
		}
		if t.MAE != nil {
			mae = *t.MAE
		} else if pnl < 0 {
			mae = pnl * 1.2
		} else {
			mae = -math.Abs(pnl) * 0.3
		}
		if estimated {
			report.EstimatedCount++
		}

		report.Points = append(report.Points, ExcursionPoint{
			Symbol:    t.Symbol,
			PnL:       pnl,
			MFE:       math.Abs(mfe),
			MAE:       math.Abs(mae),
			IsWin:     pnl > 0,
			Estimated: estimated,
		})
	}

	var totalRealized, totalMFE float64
	for _, p := range report.Points {
		if p.IsWin && p.MFE > 0 {
			totalRealized += p.PnL
			totalMFE += p.MFE
		}
	}
	if totalMFE > 0 {
		report.ExitEfficiencyPct = math.Min(totalRealized/totalMFE*100, 100)
	}

	if n := float64(len(report.Points)); n > 0 {
		var sumMAE, sumMFE float64
		for _, p := range report.Points {
			sumMAE += p.MAE
			sumMFE += p.MFE
		}
		report.AvgMAE = sumMAE / n
		report.AvgMFE = sumMFE / n
	}
	return report
}
