// Package metrics derives performance and risk analytics from a trader's
// closed-trade history. All computations are pure: inputs are copied and
// sorted internally, nothing is mutated, and degenerate input (empty list,
// zero variance, zero denominators) yields defined zero values instead of
// errors or NaN.
package metrics

import (
	"sort"
	"time"
)

// Trade directions.
const (
	DirectionLong  = "long"
	DirectionShort = "short"
)

// Trade is the engine's input record. Optional excursion and risk fields are
// pointers so absence is distinguishable from zero.
type Trade struct {
	Symbol        string
	Direction     string
	EntryDate     time.Time
	ExitDate      *time.Time
	ProfitLoss    float64
	ProfitLossPct float64
	Strategy      string
	Emotion       string
	SetupQuality  string
	IsMistake     bool
	MAE           *float64
	MFE           *float64
	InitialRisk   *float64
}

// Config holds the business assumptions behind the risk models. The defaults
// mirror the hardcoded values the product shipped with; they are surfaced
// here so callers can tune them.
type Config struct {
	// CapitalUnits is the number of risk-capital divisions assumed by the
	// risk-of-ruin power law.
	CapitalUnits int
	// RiskFreeRatePct is the annual risk-free rate subtracted in the Sortino
	// numerator, in percent.
	RiskFreeRatePct float64
	// CapitalBase is the notional account size used to convert total P&L
	// into a compound annual growth rate.
	CapitalBase float64
}

// DefaultConfig returns the stock assumptions: 20 capital units, 5% risk-free
// rate, 10,000 capital base.
func DefaultConfig() Config {
	return Config{
		CapitalUnits:    20,
		RiskFreeRatePct: 5,
		CapitalBase:     10000,
	}
}

// Engine computes analytics over trade lists. Engines are stateless and safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration. Zero-valued
// config fields fall back to the defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.CapitalUnits <= 0 {
		cfg.CapitalUnits = def.CapitalUnits
	}
	if cfg.RiskFreeRatePct == 0 {
		cfg.RiskFreeRatePct = def.RiskFreeRatePct
	}
	if cfg.CapitalBase <= 0 {
		cfg.CapitalBase = def.CapitalBase
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// tradeTime is the timestamp a trade is ordered by: exit date when the
// position is closed, entry date otherwise.
func tradeTime(t Trade) time.Time {
	if t.ExitDate != nil && !t.ExitDate.IsZero() {
		return *t.ExitDate
	}
	return t.EntryDate
}

// sortedByDate returns a copy of trades in ascending close-time order, so
// running totals are independent of input order.
func sortedByDate(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return tradeTime(out[i]).Before(tradeTime(out[j]))
	})
	return out
}

// dateLabel is the chart-axis label for a trade's ordering date.
func dateLabel(t time.Time) string {
	return t.Format("Jan 2")
}
