package metrics

import "sort"

// GroupStat aggregates trades sharing one label (an emotion or a strategy).
type GroupStat struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	TotalPnL   float64 `json:"total_pnl"`
	WinRatePct float64 `json:"win_rate_pct"`
}

// EmotionBreakdown groups trades by recorded emotion. Trades without one
// count as neutral. Results are sorted by label for stable output.
func (e *Engine) EmotionBreakdown(trades []Trade) []GroupStat {
	return groupBy(trades, func(t Trade) string {
		if t.Emotion == "" {
			return "neutral"
		}
		return t.Emotion
	})
}

// StrategyBreakdown groups trades by strategy tag; untagged trades fall into
// "Unspecified".
func (e *Engine) StrategyBreakdown(trades []Trade) []GroupStat {
	return groupBy(trades, func(t Trade) string {
		if t.Strategy == "" {
			return "Unspecified"
		}
		return t.Strategy
	})
}

func groupBy(trades []Trade, key func(Trade) string) []GroupStat {
	type acc struct {
		count int
		pnl   float64
		wins  int
	}
	groups := make(map[string]*acc)
	for _, t := range trades {
		k := key(t)
		g := groups[k]
		if g == nil {
			g = &acc{}
			groups[k] = g
		}
		g.count++
		g.pnl += t.ProfitLoss
		if t.ProfitLoss > 0 {
			g.wins++
		}
	}

	out := make([]GroupStat, 0, len(groups))
	for k, g := range groups {
		out = append(out, GroupStat{
			Label:      k,
			Count:      g.count,
			TotalPnL:   g.pnl,
			WinRatePct: float64(g.wins) / float64(g.count) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
