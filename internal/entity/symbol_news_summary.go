package entity

import (
	"time"

	"github.com/lib/pq"
)

// SymbolNewsSummary is the AI-condensed view of recent news for one symbol,
// used as context when generating trade insights.
type SymbolNewsSummary struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Symbol          string         `gorm:"type:varchar(20);not null;index" json:"symbol"`
	Sentiment       string         `gorm:"type:varchar(50)" json:"sentiment"`
	ConfidenceScore float64        `json:"confidence_score"`
	KeyIssues       pq.StringArray `gorm:"type:text[]" json:"key_issues"`
	ShortSummary    string         `gorm:"type:text" json:"short_summary"`
	Reasoning       string         `gorm:"type:text" json:"reasoning"`
	SummaryStart    time.Time      `json:"summary_start"`
	SummaryEnd      time.Time      `json:"summary_end"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the SymbolNewsSummary model.
func (SymbolNewsSummary) TableName() string {
	return "symbol_news_summaries"
}
