package repository

import (
	"fmt"
	"strings"
	"time"

	"golang-trade-journal/internal/entity"
)

// BuildSummarizeNewsPrompt assembles recent articles for one symbol into a
// summarization prompt with a fixed JSON response contract.
func BuildSummarizeNewsPrompt(symbol string, newsItems []entity.SymbolNews) string {
	var articles strings.Builder
	for i, item := range newsItems {
		published := "unknown"
		if item.PublishedAt != nil {
			published = item.PublishedAt.Format(time.RFC3339)
		}
		content := item.RawContent
		if len(content) > 4000 {
			content = content[:4000]
		}
		articles.WriteString(fmt.Sprintf("--- ARTICLE %d ---\nTitle: %s\nSource: %s\nPublished: %s\nContent: %s\n\n",
			i+1, item.Title, item.Source, published, content))
	}

	return fmt.Sprintf(`You are a financial news analyst. Summarize the recent news below for the
symbol %s as it relates to a retail swing trader holding or planning a
position in it.

%s
Respond with a JSON object:
{
  "sentiment": "bullish" | "bearish" | "neutral" | "mixed",
  "confidence_score": 0.0,
  "key_issues": ["string"],
  "short_summary": "2-3 sentence digest",
  "reasoning": "why you read the news this way"
}

IMPORTANT: Output ONLY valid JSON.`, symbol, articles.String())
}
