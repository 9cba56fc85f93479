package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
)

// agentPersonas maps each insight agent to its system role. The supervisor
// synthesizes; the others each own one analytical angle.
var agentPersonas = map[entity.InsightAgent]string{
	entity.InsightAgentSupervisor: `You are the Trading Supervisor, the central coordinator.
- Manage risk (ensure observations respect the 2% risk rule).
- Synthesize insights from every analytical angle.
- Ensure the final report is cohesive and actionable.`,

	entity.InsightAgentAnalyst: `You are The Analyst (SWOT).
- Scan the trade history for patterns.
- Identify Strengths (>65% win rate) and Weaknesses (<40% win rate).
- Highlight Opportunities (new markets) and Threats (bad habits).`,

	entity.InsightAgentTechnician: `You are The Technician.
- Focus on Price Action, Support/Resistance, and Volume.
- Identify specific setups (Breakout, Reversal) for the watchlist symbols.`,

	entity.InsightAgentQuant: `You are The Quant.
- Provide a Market Outlook (Bullish/Bearish) based on the data.
- Estimate probabilities for specific setups.
- Calculate model accuracy based on past trade performance.`,

	entity.InsightAgentPsychologist: `You are The Psychologist.
- Monitor behavioral patterns (e.g., "Revenge Trading", "FOMO").
- Assign a Maturity Level (Novice -> Master) based on trade count and discipline.
- Identify specific "Learned Behaviors" (e.g., "You tend to overtrade after a loss").`,
}

// BuildInsightPrompt assembles the persona, the performance snapshot and the
// recent trade history into a single generation prompt.
func BuildInsightPrompt(agent entity.InsightAgent, insightCtx *dto.InsightContext, trades []entity.Trade) string {
	persona, ok := agentPersonas[agent]
	if !ok {
		persona = agentPersonas[entity.InsightAgentSupervisor]
	}

	tradeJSON, _ := json.Marshal(tradesForPrompt(trades))
	ctxJSON, _ := json.Marshal(insightCtx)

	var news strings.Builder
	for _, n := range insightCtx.NewsSummaries {
		news.WriteString(fmt.Sprintf("- %s [%s, confidence %.2f]: %s\n", n.Symbol, n.Sentiment, n.Confidence, n.ShortSummary))
	}
	if news.Len() == 0 {
		news.WriteString("No recent news summaries available.\n")
	}

	return fmt.Sprintf(`%s

--- PERFORMANCE SNAPSHOT ---
%s

--- TRADE HISTORY (most recent first, max 50) ---
%s

--- WATCHLIST SYMBOLS ---
%s

--- RECENT NEWS ---
%s
--- TASK ---
Write a focused report in your role above. Ground every claim in the data
provided. Respond with a JSON object:
{
  "headline": "one sentence takeaway",
  "observations": ["string"],
  "recommendations": ["string"],
  "confidence": 0.0
}

IMPORTANT: Output ONLY valid JSON.`,
		persona,
		string(ctxJSON),
		string(tradeJSON),
		strings.Join(insightCtx.WatchlistSymbols, ", "),
		news.String(),
	)
}

type promptTrade struct {
	Symbol    string  `json:"symbol"`
	Direction string  `json:"direction"`
	Strategy  string  `json:"strategy,omitempty"`
	Emotion   string  `json:"emotion,omitempty"`
	PnL       float64 `json:"pnl"`
	PnLPct    float64 `json:"pnl_pct"`
	IsMistake bool    `json:"is_mistake,omitempty"`
}

// tradesForPrompt trims trades down to the fields the model needs, newest
// first, capped at 50 to keep token usage bounded.
func tradesForPrompt(trades []entity.Trade) []promptTrade {
	out := make([]promptTrade, 0, len(trades))
	for i := len(trades) - 1; i >= 0 && len(out) < 50; i-- {
		t := trades[i]
		out = append(out, promptTrade{
			Symbol:    t.Symbol,
			Direction: string(t.TradeType),
			Strategy:  t.Strategy,
			Emotion:   string(t.Emotion),
			PnL:       t.ProfitLoss,
			PnLPct:    t.ProfitLossPct,
			IsMistake: t.IsMistake,
		})
	}
	return out
}
