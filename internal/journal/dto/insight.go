package dto

import (
	"encoding/json"
	"time"
)

// GenerateInsightRequest asks the AI layer for a narrative over the caller's
// journal. Model is optional and falls back to the configured default.
type GenerateInsightRequest struct {
	Agent string `json:"agent"`
	Model string `json:"model"`
}

// InsightResponse is a stored or freshly generated insight.
type InsightResponse struct {
	ID        uint            `json:"id"`
	Agent     string          `json:"agent"`
	Model     string          `json:"model"`
	Content   string          `json:"content"`
	Context   json.RawMessage `json:"context,omitempty" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

// ModelsResponse lists the generation-capable models the provider exposes.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// InsightContext is what the model sees alongside its persona: a metrics
// snapshot, recent trades and the active watchlist.
type InsightContext struct {
	TradeCount       int                  `json:"trade_count"`
	TotalPnL         float64              `json:"total_pnl"`
	WinRatePct       float64              `json:"win_rate_pct"`
	ProfitFactor     float64              `json:"profit_factor"`
	DisciplineScore  float64              `json:"discipline_score"`
	SQN              float64              `json:"sqn"`
	Expectancy       float64              `json:"expectancy"`
	WatchlistSymbols []string             `json:"watchlist_symbols"`
	NewsSummaries    []InsightNewsContext `json:"news_summaries,omitempty"`
}

// InsightNewsContext is a compact news summary for one watched symbol.
type InsightNewsContext struct {
	Symbol       string  `json:"symbol"`
	Sentiment    string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	ShortSummary string  `json:"short_summary"`
}
