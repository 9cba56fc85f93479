package service

import (
	"testing"
	"time"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestApplyProfitLossLong(t *testing.T) {
	trade := &entity.Trade{
		TradeType:  entity.TradeDirectionLong,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(110.0),
		Quantity:   10,
		Fees:       5,
	}
	applyProfitLoss(trade)

	assert.InDelta(t, 95.0, trade.ProfitLoss, 1e-9)
	assert.InDelta(t, 10.0, trade.ProfitLossPct, 1e-9)
}

func TestApplyProfitLossShort(t *testing.T) {
	trade := &entity.Trade{
		TradeType:  entity.TradeDirectionShort,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(90.0),
		Quantity:   10,
		Fees:       5,
	}
	applyProfitLoss(trade)

	// Short profits when price falls: (100-90)*10 - 5 fees.
	assert.InDelta(t, 95.0, trade.ProfitLoss, 1e-9)
	assert.InDelta(t, 10.0, trade.ProfitLossPct, 1e-9)
}

func TestApplyProfitLossShortLosing(t *testing.T) {
	trade := &entity.Trade{
		TradeType:  entity.TradeDirectionShort,
		EntryPrice: 50,
		ExitPrice:  utils.ToPointer(55.0),
		Quantity:   4,
		Fees:       0,
	}
	applyProfitLoss(trade)

	assert.InDelta(t, -20.0, trade.ProfitLoss, 1e-9)
	assert.InDelta(t, -10.0, trade.ProfitLossPct, 1e-9)
}

func TestApplyProfitLossOpenPosition(t *testing.T) {
	trade := &entity.Trade{
		TradeType:  entity.TradeDirectionLong,
		EntryPrice: 100,
		Quantity:   10,
	}
	applyProfitLoss(trade)

	assert.Zero(t, trade.ProfitLoss)
	assert.Zero(t, trade.ProfitLossPct)
}

func TestApplyProfitLossFeesCanFlipWinnerToLoser(t *testing.T) {
	trade := &entity.Trade{
		TradeType:  entity.TradeDirectionLong,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(100.5),
		Quantity:   1,
		Fees:       2,
	}
	applyProfitLoss(trade)

	assert.InDelta(t, -1.5, trade.ProfitLoss, 1e-9)
	// Percentage ignores fees; it reflects price movement only.
	assert.InDelta(t, 0.5, trade.ProfitLossPct, 1e-9)
}

func TestValidateTradeRequest(t *testing.T) {
	valid := dto.CreateTradeRequest{
		Symbol:     "AAPL",
		TradeType:  "long",
		EntryDate:  time.Now(),
		EntryPrice: 100,
		Quantity:   10,
	}

	assert.NoError(t, validateTradeRequest(&valid))

	cases := []struct {
		name   string
		mutate func(*dto.CreateTradeRequest)
	}{
		{"missing symbol", func(r *dto.CreateTradeRequest) { r.Symbol = "" }},
		{"bad direction", func(r *dto.CreateTradeRequest) { r.TradeType = "sideways" }},
		{"missing entry date", func(r *dto.CreateTradeRequest) { r.EntryDate = time.Time{} }},
		{"zero entry price", func(r *dto.CreateTradeRequest) { r.EntryPrice = 0 }},
		{"zero quantity", func(r *dto.CreateTradeRequest) { r.Quantity = 0 }},
		{"negative exit price", func(r *dto.CreateTradeRequest) { r.ExitPrice = utils.ToPointer(-1.0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, validateTradeRequest(&req))
		})
	}
}

func TestToTradeResponseRoundTrip(t *testing.T) {
	exit := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	trade := &entity.Trade{
		ID:            7,
		Symbol:        "TSLA",
		TradeType:     entity.TradeDirectionShort,
		EntryDate:     exit.Add(-48 * time.Hour),
		ExitDate:      &exit,
		EntryPrice:    200,
		ExitPrice:     utils.ToPointer(190.0),
		Quantity:      5,
		ProfitLoss:    50,
		ProfitLossPct: 5,
		Emotion:       entity.TradeEmotionDisciplined,
		SetupQuality:  entity.SetupQualityGood,
	}

	resp := toTradeResponse(trade)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "short", resp.TradeType)
	assert.Equal(t, "disciplined", resp.Emotion)
	assert.Equal(t, "good", resp.SetupQuality)
	assert.Equal(t, &exit, resp.ExitDate)
	assert.InDelta(t, 50.0, resp.ProfitLoss, 1e-9)
}
