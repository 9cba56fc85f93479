package entity

import (
	"time"

	"gorm.io/gorm"
)

// TradeDirection is the side of a position.
type TradeDirection string

const (
	TradeDirectionLong  TradeDirection = "long"
	TradeDirectionShort TradeDirection = "short"
)

// TradeEmotion is the trader's self-reported state when the trade was taken.
type TradeEmotion string

const (
	TradeEmotionConfident   TradeEmotion = "confident"
	TradeEmotionAnxious     TradeEmotion = "anxious"
	TradeEmotionFearful     TradeEmotion = "fearful"
	TradeEmotionGreedy      TradeEmotion = "greedy"
	TradeEmotionDisciplined TradeEmotion = "disciplined"
	TradeEmotionImpulsive   TradeEmotion = "impulsive"
	TradeEmotionNeutral     TradeEmotion = "neutral"
)

// SetupQuality grades how well the trade matched its planned setup.
type SetupQuality string

const (
	SetupQualityExcellent SetupQuality = "excellent"
	SetupQualityGood      SetupQuality = "good"
	SetupQualityAverage   SetupQuality = "average"
	SetupQualityPoor      SetupQuality = "poor"
)

// Trade is one journaled position, open or closed. P&L fields are computed
// once when the record is written and never re-derived from live prices.
type Trade struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        string         `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Symbol        string         `gorm:"type:varchar(20);not null" json:"symbol"`
	TradeType     TradeDirection `gorm:"type:varchar(10);not null" json:"trade_type"`
	EntryDate     time.Time      `gorm:"not null" json:"entry_date"`
	ExitDate      *time.Time     `json:"exit_date,omitempty"`
	EntryPrice    float64        `gorm:"not null" json:"entry_price"`
	ExitPrice     *float64       `json:"exit_price,omitempty"`
	Quantity      float64        `gorm:"not null" json:"quantity"`
	Fees          float64        `gorm:"not null;default:0" json:"fees"`
	ProfitLoss    float64        `json:"profit_loss"`
	ProfitLossPct float64        `gorm:"column:profit_loss_percentage" json:"profit_loss_percentage"`
	Strategy      string         `gorm:"type:varchar(100)" json:"strategy"`
	Emotion       TradeEmotion   `gorm:"type:varchar(20)" json:"emotion"`
	SetupQuality  SetupQuality   `gorm:"type:varchar(20)" json:"setup_quality"`
	IsMistake     bool           `gorm:"not null;default:false" json:"is_mistake"`
	MAE           *float64       `gorm:"column:mae" json:"mae,omitempty"`
	MFE           *float64       `gorm:"column:mfe" json:"mfe,omitempty"`
	InitialRisk   *float64       `json:"initial_risk,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Trade model.
func (Trade) TableName() string {
	return "trades"
}
