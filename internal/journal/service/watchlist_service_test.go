package service

import (
	"testing"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPlanResponseRiskReward(t *testing.T) {
	plan := &entity.WatchlistPlan{
		Symbol:       "NVDA",
		Direction:    entity.TradeDirectionLong,
		TriggerPrice: utils.ToPointer(100.0),
		StopLoss:     utils.ToPointer(95.0),
		TakeProfit:   utils.ToPointer(115.0),
	}

	resp := toPlanResponse(plan)

	require.NotNil(t, resp.RiskReward)
	assert.InDelta(t, 5.0, resp.RiskReward.Risk, 1e-9)
	assert.InDelta(t, 15.0, resp.RiskReward.Reward, 1e-9)
	assert.InDelta(t, 3.0, resp.RiskReward.Ratio, 1e-9)
}

func TestToPlanResponseRiskRewardOmittedWhenLevelsIncomplete(t *testing.T) {
	plan := &entity.WatchlistPlan{
		Symbol:       "NVDA",
		Direction:    entity.TradeDirectionLong,
		TriggerPrice: utils.ToPointer(100.0),
		StopLoss:     utils.ToPointer(95.0),
	}

	resp := toPlanResponse(plan)

	assert.Nil(t, resp.RiskReward)
}

func TestValidatePlanRequest(t *testing.T) {
	valid := dto.CreatePlanRequest{
		Symbol:     "NVDA",
		Direction:  "long",
		Conviction: 3,
	}

	assert.NoError(t, validatePlanRequest(&valid))

	cases := []struct {
		name   string
		mutate func(*dto.CreatePlanRequest)
	}{
		{"missing symbol", func(r *dto.CreatePlanRequest) { r.Symbol = "" }},
		{"bad direction", func(r *dto.CreatePlanRequest) { r.Direction = "up" }},
		{"conviction too low", func(r *dto.CreatePlanRequest) { r.Conviction = 0 }},
		{"conviction too high", func(r *dto.CreatePlanRequest) { r.Conviction = 6 }},
		{"alert without trigger", func(r *dto.CreatePlanRequest) { r.AlertActive = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, validatePlanRequest(&req))
		})
	}
}
