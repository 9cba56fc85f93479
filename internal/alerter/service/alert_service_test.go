package service

import (
	"testing"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/pkg/telegram"
	"golang-trade-journal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func longPlan(trigger, stop *float64) *entity.WatchlistPlan {
	return &entity.WatchlistPlan{
		Symbol:       "AAPL",
		Direction:    entity.TradeDirectionLong,
		TriggerPrice: trigger,
		StopLoss:     stop,
	}
}

func shortPlan(trigger, stop *float64) *entity.WatchlistPlan {
	return &entity.WatchlistPlan{
		Symbol:       "AAPL",
		Direction:    entity.TradeDirectionShort,
		TriggerPrice: trigger,
		StopLoss:     stop,
	}
}

func TestCrossedLevelLongTrigger(t *testing.T) {
	plan := longPlan(utils.ToPointer(100.0), utils.ToPointer(90.0))

	kind, level, hit := crossedLevel(plan, 101)
	assert.True(t, hit)
	assert.Equal(t, telegram.TriggerHit, kind)
	assert.InDelta(t, 100.0, level, 1e-9)

	_, _, hit = crossedLevel(plan, 95)
	assert.False(t, hit)
}

func TestCrossedLevelLongStop(t *testing.T) {
	plan := longPlan(utils.ToPointer(100.0), utils.ToPointer(90.0))

	kind, level, hit := crossedLevel(plan, 89.5)
	assert.True(t, hit)
	assert.Equal(t, telegram.StopBreached, kind)
	assert.InDelta(t, 90.0, level, 1e-9)
}

func TestCrossedLevelShortTrigger(t *testing.T) {
	plan := shortPlan(utils.ToPointer(50.0), utils.ToPointer(60.0))

	kind, _, hit := crossedLevel(plan, 49)
	assert.True(t, hit)
	assert.Equal(t, telegram.TriggerHit, kind)

	_, _, hit = crossedLevel(plan, 55)
	assert.False(t, hit)
}

func TestCrossedLevelShortStop(t *testing.T) {
	plan := shortPlan(utils.ToPointer(50.0), utils.ToPointer(60.0))

	kind, _, hit := crossedLevel(plan, 61)
	assert.True(t, hit)
	assert.Equal(t, telegram.StopBreached, kind)
}

func TestCrossedLevelExactBoundaryCounts(t *testing.T) {
	plan := longPlan(utils.ToPointer(100.0), nil)

	kind, _, hit := crossedLevel(plan, 100)
	assert.True(t, hit)
	assert.Equal(t, telegram.TriggerHit, kind)
}

func TestCrossedLevelStopTakesPrecedence(t *testing.T) {
	// Inverted levels: a price that crosses both resolves to the stop.
	plan := shortPlan(utils.ToPointer(70.0), utils.ToPointer(60.0))

	kind, _, hit := crossedLevel(plan, 65)
	assert.True(t, hit)
	assert.Equal(t, telegram.StopBreached, kind)
}

func TestCrossedLevelNoLevelsSet(t *testing.T) {
	plan := longPlan(nil, nil)

	_, _, hit := crossedLevel(plan, 123)
	assert.False(t, hit)
}
