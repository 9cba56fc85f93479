package repository

import (
	"strings"
	"testing"
	"time"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildInsightPromptIncludesPersonaAndContext(t *testing.T) {
	insightCtx := &dto.InsightContext{
		TradeCount:       12,
		WinRatePct:       58.3,
		WatchlistSymbols: []string{"AAPL", "NVDA"},
		NewsSummaries: []dto.InsightNewsContext{
			{Symbol: "AAPL", Sentiment: "bullish", Confidence: 0.8, ShortSummary: "Strong earnings."},
		},
	}
	trades := []entity.Trade{
		{Symbol: "AAPL", TradeType: entity.TradeDirectionLong, ProfitLoss: 120, EntryDate: time.Now()},
	}

	prompt := BuildInsightPrompt(entity.InsightAgentPsychologist, insightCtx, trades)

	assert.Contains(t, prompt, "The Psychologist")
	assert.Contains(t, prompt, "AAPL, NVDA")
	assert.Contains(t, prompt, "Strong earnings.")
	assert.Contains(t, prompt, `"win_rate_pct":58.3`)
	assert.Contains(t, prompt, "Output ONLY valid JSON")
}

func TestBuildInsightPromptUnknownAgentFallsBackToSupervisor(t *testing.T) {
	prompt := BuildInsightPrompt("astrologer", &dto.InsightContext{}, nil)

	assert.Contains(t, prompt, "Trading Supervisor")
}

func TestTradesForPromptNewestFirstCappedAtFifty(t *testing.T) {
	trades := make([]entity.Trade, 60)
	for i := range trades {
		trades[i] = entity.Trade{
			Symbol:     "SYM",
			ProfitLoss: float64(i),
			EntryDate:  time.Now().Add(time.Duration(i) * time.Hour),
		}
	}

	out := tradesForPrompt(trades)

	assert.Len(t, out, 50)
	// Input is oldest-first; the prompt leads with the newest trade.
	assert.InDelta(t, 59.0, out[0].PnL, 1e-9)
	assert.InDelta(t, 10.0, out[len(out)-1].PnL, 1e-9)
}

func TestBuildInsightPromptNoNews(t *testing.T) {
	prompt := BuildInsightPrompt(entity.InsightAgentAnalyst, &dto.InsightContext{}, nil)

	assert.True(t, strings.Contains(prompt, "No recent news summaries available."))
}
