package metrics

import (
	"math"
	"time"
)

// SummaryReport is the dashboard headline: all-time totals plus deltas of
// the trailing 30 days against the 30 days before.
type SummaryReport struct {
	TotalPnL     float64 `json:"total_pnl"`
	WinRatePct   float64 `json:"win_rate_pct"`
	TradeCount   int     `json:"trade_count"`
	ProfitFactor float64 `json:"profit_factor"`

	PnLChangePct       float64 `json:"pnl_change_pct"`
	WinRateChange      float64 `json:"win_rate_change"`
	TradeCountChange   int     `json:"trade_count_change"`
	ProfitFactorChange float64 `json:"profit_factor_change"`
}

type periodStats struct {
	pnl     float64
	winRate float64
	count   int
	pf      float64
}

// Summary aggregates headline stats as of now. The reference time is a
// parameter so period comparisons are reproducible.
func (e *Engine) Summary(trades []Trade, now time.Time) SummaryReport {
	if len(trades) == 0 {
		return SummaryReport{}
	}

	const period = 30 * 24 * time.Hour
	currentStart := now.Add(-period)
	prevStart := now.Add(-2 * period)

	var current, previous []Trade
	for _, t := range trades {
		switch {
		case !t.EntryDate.Before(currentStart):
			current = append(current, t)
		case !t.EntryDate.Before(prevStart):
			previous = append(previous, t)
		}
	}

	all := stats(trades)
	cur := stats(current)
	prev := stats(previous)

	return SummaryReport{
		TotalPnL:           all.pnl,
		WinRatePct:         all.winRate,
		TradeCount:         all.count,
		ProfitFactor:       all.pf,
		PnLChangePct:       pctChange(cur.pnl, prev.pnl),
		WinRateChange:      cur.winRate - prev.winRate,
		TradeCountChange:   cur.count - prev.count,
		ProfitFactorChange: cur.pf - prev.pf,
	}
}

func stats(trades []Trade) periodStats {
	if len(trades) == 0 {
		return periodStats{}
	}

	var wins int
	var pnl, grossProfit, grossLoss float64
	for _, t := range trades {
		pnl += t.ProfitLoss
		if t.ProfitLoss > 0 {
			wins++
			grossProfit += t.ProfitLoss
		} else if t.ProfitLoss < 0 {
			grossLoss += -t.ProfitLoss
		}
	}

	pf := grossProfit
	if grossLoss > 0 {
		pf = grossProfit / grossLoss
	}

	return periodStats{
		pnl:     pnl,
		winRate: float64(wins) / float64(len(trades)) * 100,
		count:   len(trades),
		pf:      pf,
	}
}

func pctChange(curr, prev float64) float64 {
	if prev == 0 {
		if curr != 0 {
			return 100
		}
		return 0
	}
	return (curr - prev) / math.Abs(prev) * 100
}
