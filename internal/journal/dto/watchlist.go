package dto

import "time"

// CreatePlanRequest is the DTO for staging a new watchlist plan.
type CreatePlanRequest struct {
	Symbol       string   `json:"symbol"`
	Direction    string   `json:"direction"`
	SetupType    string   `json:"setup_type"`
	Conviction   int      `json:"conviction"`
	TriggerPrice *float64 `json:"trigger_price,omitempty"`
	StopLoss     *float64 `json:"stop_loss,omitempty"`
	TakeProfit   *float64 `json:"take_profit,omitempty"`
	Thesis       string   `json:"thesis"`
	AlertActive  bool     `json:"alert_active"`
	IsActive     bool     `json:"is_active"`
}

// UpdatePlanRequest is the DTO for editing an existing plan.
type UpdatePlanRequest = CreatePlanRequest

// RiskRewardDTO is the projected risk/reward of a plan's price levels.
type RiskRewardDTO struct {
	Risk   float64 `json:"risk"`
	Reward float64 `json:"reward"`
	Ratio  float64 `json:"ratio"`
}

// PlanResponse is the DTO for API responses containing plan details.
// RiskReward is present only when all three price levels are set.
type PlanResponse struct {
	ID            uint           `json:"id"`
	Symbol        string         `json:"symbol"`
	Direction     string         `json:"direction"`
	SetupType     string         `json:"setup_type"`
	Conviction    int            `json:"conviction"`
	TriggerPrice  *float64       `json:"trigger_price,omitempty"`
	StopLoss      *float64       `json:"stop_loss,omitempty"`
	TakeProfit    *float64       `json:"take_profit,omitempty"`
	Thesis        string         `json:"thesis"`
	AlertActive   bool           `json:"alert_active"`
	IsActive      bool           `json:"is_active"`
	LastAlertedAt *time.Time     `json:"last_alerted_at,omitempty"`
	RiskReward    *RiskRewardDTO `json:"risk_reward,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
