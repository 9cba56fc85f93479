package metrics

import "math"

// RiskReward is a staged plan's projected risk and reward per unit, with
// their ratio. Ratio is zero when the trigger and stop coincide.
type RiskReward struct {
	Risk   float64 `json:"risk"`
	Reward float64 `json:"reward"`
	Ratio  float64 `json:"ratio"`
}

// PlanRiskReward projects the R:R of a watchlist plan from its trigger,
// stop-loss and take-profit levels.
func PlanRiskReward(trigger, stop, target float64) RiskReward {
	rr := RiskReward{
		Risk:   math.Abs(trigger - stop),
		Reward: math.Abs(target - trigger),
	}
	if rr.Risk > 0 {
		rr.Ratio = rr.Reward / rr.Risk
	}
	return rr
}
