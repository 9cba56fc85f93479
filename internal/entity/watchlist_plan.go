package entity

import "time"

// WatchlistPlan is a staged trade idea that has not been executed yet.
// Price levels are optional until the plan firms up.
type WatchlistPlan struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        string         `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Symbol        string         `gorm:"type:varchar(20);not null" json:"symbol"`
	Direction     TradeDirection `gorm:"type:varchar(10);not null" json:"direction"`
	SetupType     string         `gorm:"type:varchar(100)" json:"setup_type"`
	Conviction    int            `gorm:"not null;default:3" json:"conviction"`
	TriggerPrice  *float64       `json:"trigger_price,omitempty"`
	StopLoss      *float64       `json:"stop_loss,omitempty"`
	TakeProfit    *float64       `json:"take_profit,omitempty"`
	Thesis        string         `gorm:"type:text" json:"thesis"`
	AlertActive   bool           `gorm:"not null;default:false" json:"alert_active"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	LastAlertedAt *time.Time     `json:"last_alerted_at,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the WatchlistPlan model.
func (WatchlistPlan) TableName() string {
	return "watchlist_plans"
}
