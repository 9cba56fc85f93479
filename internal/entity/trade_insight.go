package entity

import (
	"time"

	"gorm.io/datatypes"
)

// InsightAgent selects the persona an AI insight is generated with.
type InsightAgent string

const (
	InsightAgentSupervisor   InsightAgent = "supervisor"
	InsightAgentAnalyst      InsightAgent = "analyst"
	InsightAgentTechnician   InsightAgent = "technician"
	InsightAgentQuant        InsightAgent = "quant"
	InsightAgentPsychologist InsightAgent = "psychologist"
)

// TradeInsight is a stored AI-generated narrative over a user's journal.
// Context carries the request context the model saw (metrics snapshot,
// watchlist symbols) for later auditing.
type TradeInsight struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Agent     InsightAgent   `gorm:"type:varchar(20);not null" json:"agent"`
	Model     string         `gorm:"type:varchar(100);not null" json:"model"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Context   datatypes.JSON `json:"context"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the TradeInsight model.
func (TradeInsight) TableName() string {
	return "trade_insights"
}
