package dto

import "time"

// CreateTradeRequest is the DTO for journaling a new trade. Exit fields are
// optional: a trade without them is an open position.
type CreateTradeRequest struct {
	Symbol       string     `json:"symbol"`
	TradeType    string     `json:"trade_type"`
	EntryDate    time.Time  `json:"entry_date"`
	ExitDate     *time.Time `json:"exit_date,omitempty"`
	EntryPrice   float64    `json:"entry_price"`
	ExitPrice    *float64   `json:"exit_price,omitempty"`
	Quantity     float64    `json:"quantity"`
	Fees         float64    `json:"fees"`
	Strategy     string     `json:"strategy"`
	Emotion      string     `json:"emotion"`
	SetupQuality string     `json:"setup_quality"`
	IsMistake    bool       `json:"is_mistake"`
	MAE          *float64   `json:"mae,omitempty"`
	MFE          *float64   `json:"mfe,omitempty"`
	InitialRisk  *float64   `json:"initial_risk,omitempty"`
	Notes        string     `json:"notes"`
}

// UpdateTradeRequest is the DTO for editing an existing trade. The same
// shape as creation; P&L is recomputed from the submitted prices.
type UpdateTradeRequest = CreateTradeRequest

// TradeResponse is the DTO for API responses containing trade details.
type TradeResponse struct {
	ID            uint       `json:"id"`
	Symbol        string     `json:"symbol"`
	TradeType     string     `json:"trade_type"`
	EntryDate     time.Time  `json:"entry_date"`
	ExitDate      *time.Time `json:"exit_date,omitempty"`
	EntryPrice    float64    `json:"entry_price"`
	ExitPrice     *float64   `json:"exit_price,omitempty"`
	Quantity      float64    `json:"quantity"`
	Fees          float64    `json:"fees"`
	ProfitLoss    float64    `json:"profit_loss"`
	ProfitLossPct float64    `json:"profit_loss_percentage"`
	Strategy      string     `json:"strategy"`
	Emotion       string     `json:"emotion"`
	SetupQuality  string     `json:"setup_quality"`
	IsMistake     bool       `json:"is_mistake"`
	MAE           *float64   `json:"mae,omitempty"`
	MFE           *float64   `json:"mfe,omitempty"`
	InitialRisk   *float64   `json:"initial_risk,omitempty"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
